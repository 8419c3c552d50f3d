package tools

import (
	"flag"
	"log"
)

const (
	CommandIndex = "index"
	CommandLOD   = "lod"
)

type FlagsGlobal struct {
	Help    *bool `json:"help"`
	Version *bool `json:"version"`
}

// Flags shared by every subcommand: ingestion plus tree construction
type BuildFlags struct {
	Input                     *string `json:"input"`
	Srid                      *int    `json:"srid"`
	TargetSrid                *int    `json:"target_srid"`
	EightBitColors            *bool
	ZOffset                   *float64
	FolderProcessing          *bool
	RecursiveFolderProcessing *bool
	MaxPointsPerNode          *int     `json:"max_points_per_node"`
	MaxDepth                  *int     `json:"max_depth"`
	MinNodeSize               *float64 `json:"min_node_size"`
	InitialSpacing            *float64 `json:"initial_spacing"`
}

type FlagsForCommandIndex struct {
	BuildFlags
	Silent       *bool
	LogTimestamp *bool
	Help         *bool
	Version      *bool
}

type FlagsForCommandLOD struct {
	BuildFlags
	Output              *string
	SplitNodes          *bool
	XYZPrecision        *int
	PointBudget         *int
	LODMultiplier       *float64
	MinScreenSpaceError *float64
	CameraX             *float64
	CameraY             *float64
	CameraZ             *float64
	TargetX             *float64
	TargetY             *float64
	TargetZ             *float64
	FovY                *float64
	Aspect              *float64
	Near                *float64
	Far                 *float64
	NoCulling           *bool
	Silent              *bool
	LogTimestamp        *bool
	Help                *bool
	Version             *bool
}

func ParseFlagsGlobal() FlagsGlobal {
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	version := defineBoolFlag("version", "v", false, "Displays the version of pointlod.")

	flag.Parse()

	return FlagsGlobal{
		Help:    help,
		Version: version,
	}
}

func defineBuildFlags(flagCommand *flag.FlagSet) BuildFlags {
	input := defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input las/xyz file or folder.")
	srid := defineIntFlagCommand(flagCommand, "srid", "e", 0, "EPSG srid code of input points. 0 keeps coordinates as they are.")
	targetSrid := defineIntFlagCommand(flagCommand, "target-srid", "", 3857, "EPSG srid code points are reprojected to before indexing, when -srid is set.")
	eightBit := defineBoolFlagCommand(flagCommand, "8bit", "b", false, "Assumes the input LAS has colors encoded in eight bit format. Default is false (LAS has 16 bit color depth)")
	zOffset := defineFloat64FlagCommand(flagCommand, "zoffset", "z", 0, "Vertical offset to apply to points, in meters.")
	folderProcessing := defineBoolFlagCommand(flagCommand, "folder", "f", false, "Enables processing of all supported files from input folder. Input must be a folder if specified")
	recursiveFolderProcessing := defineBoolFlagCommand(flagCommand, "recursive", "r", false, "Enables recursive lookup for input files inside the subfolders")
	maxPointsPerNode := defineIntFlagCommand(flagCommand, "max-points-per-node", "m", 10000, "Number of points a node may hold before it subdivides.")
	maxDepth := defineIntFlagCommand(flagCommand, "max-depth", "d", 8, "Hard ceiling on tree depth, root being level zero.")
	minNodeSize := defineFloat64FlagCommand(flagCommand, "min-node-size", "n", 0.01, "Node half width, in input units, below which subdivision stops.")
	initialSpacing := defineFloat64FlagCommand(flagCommand, "spacing", "", 0, "Root spacing override. 0 derives it from the cloud density.")

	return BuildFlags{
		Input:                     input,
		Srid:                      srid,
		TargetSrid:                targetSrid,
		EightBitColors:            eightBit,
		ZOffset:                   zOffset,
		FolderProcessing:          folderProcessing,
		RecursiveFolderProcessing: recursiveFolderProcessing,
		MaxPointsPerNode:          maxPointsPerNode,
		MaxDepth:                  maxDepth,
		MinNodeSize:               minNodeSize,
		InitialSpacing:            initialSpacing,
	}
}

func ParseFlagsForCommandIndex(args []string) FlagsForCommandIndex {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-index", flag.ExitOnError)

	buildFlags := defineBuildFlags(flagCommand)
	silent := defineBoolFlagCommand(flagCommand, "silent", "s", false, "Use to suppress all the non-error messages.")
	logTimestamp := defineBoolFlagCommand(flagCommand, "timestamp", "t", false, "Adds timestamp to log messages.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of pointlod.")

	flagCommand.Parse(args)

	return FlagsForCommandIndex{
		BuildFlags:   buildFlags,
		Silent:       silent,
		LogTimestamp: logTimestamp,
		Help:         help,
		Version:      version,
	}
}

func ParseFlagsForCommandLOD(args []string) FlagsForCommandLOD {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-lod", flag.ExitOnError)

	buildFlags := defineBuildFlags(flagCommand)
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output file (merged) or folder (split) where to write the selected points.")
	splitNodes := defineBoolFlagCommand(flagCommand, "split", "", false, "Writes one xyz file per selected node instead of a single merged file. Output must be a folder.")
	xyzPrecision := defineIntFlagCommand(flagCommand, "precision", "p", 3, "Decimal digits written for coordinates in xyz output.")
	pointBudget := defineIntFlagCommand(flagCommand, "budget", "", 1000000, "Ceiling on the total number of selected points, honored at node granularity.")
	lodMultiplier := defineFloat64FlagCommand(flagCommand, "lod-multiplier", "", 1.0, "Scales the screen space error. Higher biases towards coarser detail.")
	minScreenSpaceError := defineFloat64FlagCommand(flagCommand, "min-sse", "", 1.0, "Screen space error below which a node is detailed enough to render as is.")
	cameraX := defineFloat64FlagCommand(flagCommand, "camera-x", "", 0, "Camera world position, x component.")
	cameraY := defineFloat64FlagCommand(flagCommand, "camera-y", "", 0, "Camera world position, y component.")
	cameraZ := defineFloat64FlagCommand(flagCommand, "camera-z", "", 0, "Camera world position, z component.")
	targetX := defineFloat64FlagCommand(flagCommand, "target-x", "", 0, "Camera look at target, x component.")
	targetY := defineFloat64FlagCommand(flagCommand, "target-y", "", 0, "Camera look at target, y component.")
	targetZ := defineFloat64FlagCommand(flagCommand, "target-z", "", 0, "Camera look at target, z component.")
	fovY := defineFloat64FlagCommand(flagCommand, "fov", "", 60, "Camera vertical field of view, in degrees.")
	aspect := defineFloat64FlagCommand(flagCommand, "aspect", "", 16.0/9.0, "Camera aspect ratio.")
	near := defineFloat64FlagCommand(flagCommand, "near", "", 0.1, "Camera near plane distance.")
	far := defineFloat64FlagCommand(flagCommand, "far", "", 1e9, "Camera far plane distance.")
	noCulling := defineBoolFlagCommand(flagCommand, "no-culling", "", false, "Uses a position only camera, disabling frustum culling.")
	silent := defineBoolFlagCommand(flagCommand, "silent", "s", false, "Use to suppress all the non-error messages.")
	logTimestamp := defineBoolFlagCommand(flagCommand, "timestamp", "t", false, "Adds timestamp to log messages.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of pointlod.")

	flagCommand.Parse(args)

	return FlagsForCommandLOD{
		BuildFlags:          buildFlags,
		Output:              output,
		SplitNodes:          splitNodes,
		XYZPrecision:        xyzPrecision,
		PointBudget:         pointBudget,
		LODMultiplier:       lodMultiplier,
		MinScreenSpaceError: minScreenSpaceError,
		CameraX:             cameraX,
		CameraY:             cameraY,
		CameraZ:             cameraZ,
		TargetX:             targetX,
		TargetY:             targetY,
		TargetZ:             targetZ,
		FovY:                fovY,
		Aspect:              aspect,
		Near:                near,
		Far:                 far,
		NoCulling:           noCulling,
		Silent:              silent,
		LogTimestamp:        logTimestamp,
		Help:                help,
		Version:             version,
	}
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineIntFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	flagCommand.IntVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineFloat64FlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flagCommand.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
