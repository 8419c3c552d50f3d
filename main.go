package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/orbitview/pointlod/internal/pipeline"
	"github.com/orbitview/pointlod/pkg"
	"github.com/orbitview/pointlod/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/orbitview/pointlod/tools"
)

const VERSION = "0.3.1"

const logo = `
              _       _   _           _
  _ __   ___ (_)_ __ | |_| | ___   __| |
 | '_ \ / _ \| | '_ \| __| |/ _ \ / _  |
 | |_) | (_) | | | | | |_| | (_) | (_| |
 | .__/ \___/|_|_| |_|\__|_|\___/ \__,_|
 |_|  point cloud octree + LOD selection`

func main() {
	log.SetPrefix("[pointlod] ")
	log.SetFlags(log.LUTC | log.Ldate | log.Lmicroseconds | log.Lshortfile)

	flagsGlobal := tools.ParseFlagsGlobal()
	log.Println(tools.FmtJSONString(flagsGlobal))

	if *flagsGlobal.Help {
		showHelp()
		return
	}
	if *flagsGlobal.Version {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("Please specify a subcommand [index|lod].")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case tools.CommandIndex:
		mainCommandIndex(args)
	case tools.CommandLOD:
		mainCommandLOD(args)
	default:
		log.Fatalf("Unrecognized command [%q]. Command must be one of [index|lod]", cmd)
	}
}

func mainCommandIndex(args []string) {
	flags := tools.ParseFlagsForCommandIndex(args)

	if *flags.Help {
		showHelp()
		return
	}
	if *flags.Version {
		printVersion()
		return
	}

	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if !*flags.LogTimestamp {
		tools.DisableLoggerTimestamp()
	}

	opts := optionsFromBuildFlags(&flags.BuildFlags)

	if msg, res := validateOptions(opts); !res {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	err := pkg.NewIndexer(tools.NewStandardFileFinder(), std_algorithm_manager.NewAlgorithmManager(opts)).Run(opts)

	if err != nil {
		log.Fatal("Error while indexing: ", err)
	} else {
		tools.LogOutput("Indexing Completed")
	}
}

func mainCommandLOD(args []string) {
	flags := tools.ParseFlagsForCommandLOD(args)

	if *flags.Help {
		showHelp()
		return
	}
	if *flags.Version {
		printVersion()
		return
	}

	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if !*flags.LogTimestamp {
		tools.DisableLoggerTimestamp()
	}

	opts := optionsFromBuildFlags(&flags.BuildFlags)
	opts.PointBudget = *flags.PointBudget
	opts.LODMultiplier = *flags.LODMultiplier
	opts.MinScreenSpaceError = *flags.MinScreenSpaceError
	opts.CameraX = *flags.CameraX
	opts.CameraY = *flags.CameraY
	opts.CameraZ = *flags.CameraZ
	opts.TargetX = *flags.TargetX
	opts.TargetY = *flags.TargetY
	opts.TargetZ = *flags.TargetZ
	opts.FovY = *flags.FovY
	opts.Aspect = *flags.Aspect
	opts.Near = *flags.Near
	opts.Far = *flags.Far
	opts.NoCulling = *flags.NoCulling
	opts.LODOptions = &pipeline.LODOptions{
		Output:       *flags.Output,
		SplitNodes:   *flags.SplitNodes,
		XYZPrecision: *flags.XYZPrecision,
	}

	if msg, res := validateOptions(opts); !res {
		log.Fatal("Error parsing input parameters: " + msg)
	}
	if opts.LODOptions.Output == "" {
		log.Fatal("Error parsing input parameters: Output file/folder not specified")
	}

	err := pkg.NewLODRunner(tools.NewStandardFileFinder(), std_algorithm_manager.NewAlgorithmManager(opts)).Run(opts)

	if err != nil {
		log.Fatal("Error while selecting LOD: ", err)
	} else {
		tools.LogOutput("LOD Selection Completed")
	}
}

func optionsFromBuildFlags(flags *tools.BuildFlags) *pipeline.Options {
	return &pipeline.Options{
		Input:            *flags.Input,
		Srid:             *flags.Srid,
		TargetSrid:       *flags.TargetSrid,
		EightBitColors:   *flags.EightBitColors,
		ZOffset:          *flags.ZOffset,
		FolderProcessing: *flags.FolderProcessing,
		Recursive:        *flags.RecursiveFolderProcessing,
		MaxPointsPerNode: *flags.MaxPointsPerNode,
		MaxDepth:         *flags.MaxDepth,
		MinNodeSize:      *flags.MinNodeSize,
		InitialSpacing:   *flags.InitialSpacing,
	}
}

// Validates the input options provided to the command line tool checking
// that the input file/folder exists and tree options are consistent
func validateOptions(opts *pipeline.Options) (string, bool) {
	if opts.Input == "" {
		return "Input file/folder not specified", false
	}
	if _, err := os.Stat(opts.Input); os.IsNotExist(err) {
		return "Input file/folder not found", false
	}
	if opts.MaxDepth < 0 {
		return "max-depth cannot be negative", false
	}
	if opts.MinNodeSize < 0 {
		return "min-node-size cannot be negative", false
	}
	return "", true
}

func printLogo() {
	fmt.Println(logo)
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("pointlod builds an octree spatial index over LAS/XYZ point clouds and extracts render ready, budgeted LOD selections from it")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Command line flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
