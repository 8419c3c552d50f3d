package pipeline

// Contains the options needed by the indexing and LOD pipelines, filled
// from command line flags by main and consumed by the pkg runners.
type Options struct {
	Input            string  // input LAS/XYZ file or folder
	Srid             int     // EPSG code of input coordinates
	TargetSrid       int     // EPSG code points are reprojected to before indexing
	EightBitColors   bool    // if true assume the input LAS uses 8 bit color depth
	ZOffset          float64 // vertical offset in meters applied to points during ingestion
	FolderProcessing bool    // process every supported file found in the input folder
	Recursive        bool    // recursive lookup of input files in subfolders

	MaxPointsPerNode int     // node capacity before subdivision
	MaxDepth         int     // hard tree depth ceiling
	MinNodeSize      float64 // half width below which nodes refuse to subdivide
	InitialSpacing   float64 // root spacing override, zero derives from density

	PointBudget         int     // LOD selection point budget
	LODMultiplier       float64 // screen space error bias
	MinScreenSpaceError float64 // acceptance threshold
	CameraX             float64 // camera world position
	CameraY             float64
	CameraZ             float64
	TargetX             float64 // camera look at target
	TargetY             float64
	TargetZ             float64
	FovY                float64 // vertical field of view in degrees
	Aspect              float64
	Near                float64
	Far                 float64
	NoCulling           bool // use a position only camera, disabling frustum culling

	LODOptions *LODOptions
}

type LODOptions struct {
	Output       string // output file (merged) or folder (split)
	SplitNodes   bool   // write one file per selected node instead of one merged file
	XYZPrecision int    // decimal digits written for coordinates
}

func (opt *Options) Copy() *Options {
	newOpt := *opt
	if opt.LODOptions != nil {
		lodOpt := *opt.LODOptions
		newOpt.LODOptions = &lodOpt
	}
	return &newOpt
}
