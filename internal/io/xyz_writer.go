package io

import (
	"bufio"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/orbitview/pointlod/internal/data"
)

const DefaultXYZPrecision = 3

// Writes the cloud as whitespace separated XYZ text, one point per line,
// with coordinates rendered at a fixed decimal precision so repeated runs
// over the same cloud produce byte identical files. Attribute columns are
// emitted only for the buffers the cloud carries.
func WriteXYZFile(filePath string, cloud *data.PointCloud, precision int) error {
	if precision <= 0 {
		precision = DefaultXYZPrecision
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := bufio.NewWriter(file)
	for i := 0; i < cloud.NumPoints(); i++ {
		writeCoordinate(w, cloud.Positions[3*i], precision)
		w.WriteByte(' ')
		writeCoordinate(w, cloud.Positions[3*i+1], precision)
		w.WriteByte(' ')
		writeCoordinate(w, cloud.Positions[3*i+2], precision)

		if cloud.HasColors() {
			w.WriteByte(' ')
			w.WriteString(strconv.Itoa(int(cloud.Colors[3*i])))
			w.WriteByte(' ')
			w.WriteString(strconv.Itoa(int(cloud.Colors[3*i+1])))
			w.WriteByte(' ')
			w.WriteString(strconv.Itoa(int(cloud.Colors[3*i+2])))
		}
		if cloud.HasIntensities() {
			w.WriteByte(' ')
			writeCoordinate(w, cloud.Intensities[i], precision)
		}
		if cloud.HasClassifications() {
			w.WriteByte(' ')
			w.WriteString(strconv.Itoa(int(cloud.Classifications[i])))
		}
		w.WriteByte('\n')
	}

	return w.Flush()
}

func writeCoordinate(w *bufio.Writer, v float64, precision int) {
	w.WriteString(decimal.NewFromFloat(v).StringFixed(int32(precision)))
}
