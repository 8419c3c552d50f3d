package io

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/orbitview/pointlod/internal/data"
)

// Reads a whitespace separated XYZ text file. Each line holds
// "x y z [r g b [intensity [classification]]]"; blank lines and lines
// starting with # are skipped. Attribute buffers are emitted only when the
// first data line carries the corresponding columns.
func ReadXYZFile(filePath string) (*data.PointCloud, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	cloud := &data.PointCloud{}
	columns := 0
	lineNo := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if columns == 0 {
			columns = len(fields)
			switch columns {
			case 3, 6, 7, 8:
			default:
				return nil, fmt.Errorf("line %d: unsupported column count %d", lineNo, columns)
			}
		}
		if len(fields) != columns {
			return nil, fmt.Errorf("line %d: expected %d columns, found %d", lineNo, columns, len(fields))
		}

		values := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			values[i] = v
		}

		cloud.Positions = append(cloud.Positions, values[0], values[1], values[2])
		if columns >= 6 {
			cloud.Colors = append(cloud.Colors, uint8(values[3]), uint8(values[4]), uint8(values[5]))
		}
		if columns >= 7 {
			cloud.Intensities = append(cloud.Intensities, values[6])
		}
		if columns >= 8 {
			cloud.Classifications = append(cloud.Classifications, uint8(values[7]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := cloud.Validate(); err != nil {
		return nil, err
	}

	return cloud, nil
}
