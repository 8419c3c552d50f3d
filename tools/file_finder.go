package tools

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/orbitview/pointlod/internal/pipeline"
)

type FileFinder interface {
	GetFilesToProcess(opts *pipeline.Options) []string
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

func isSupportedInputFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".las", ".xyz", ".txt":
		return true
	}
	return false
}

func (f *StandardFileFinder) GetFilesToProcess(opts *pipeline.Options) []string {
	// If folder processing is not enabled then the input file is given by the
	// -input flag, otherwise look for supported files in the -input folder,
	// eventually excluding nested folders if the Recursive flag is disabled
	if !opts.FolderProcessing {
		return []string{opts.Input}
	}

	return f.getFilesFromInputFolder(opts)
}

func (f *StandardFileFinder) getFilesFromInputFolder(opts *pipeline.Options) []string {
	var files = make([]string, 0)

	baseInfo, _ := os.Stat(opts.Input)
	err := filepath.Walk(
		opts.Input,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && !opts.Recursive && !os.SameFile(info, baseInfo) {
				return filepath.SkipDir
			}
			if !info.IsDir() && isSupportedInputFile(info.Name()) {
				files = append(files, path)
			}
			return nil
		},
	)

	if err != nil {
		log.Fatal(err)
	}

	return files
}
