package main

import (
	"errors"
	"os"
	"path/filepath"
)

// Locations of the source screenshot and the generated sprite, relative to
// the project root.
var (
	inputRel  = filepath.Join("docs", "Concepts", "Schrein", "Screenshot 2025-11-27 143457.png")
	outputRel = filepath.Join("public", "Assets", "shrine.png")
)

// Paths holds the resolved input and output files for one run.
type Paths struct {
	Root   string
	Input  string
	Output string
}

// resolvePaths builds the run paths from the command-line arguments (program
// name excluded). An optional single argument names the project root;
// otherwise the current working directory is used.
func resolvePaths(args []string) (Paths, error) {
	var root string
	switch len(args) {
	case 0:
		wd, err := os.Getwd()
		if err != nil {
			return Paths{}, err
		}
		root = wd
	case 1:
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return Paths{}, err
		}
		root = abs
	default:
		return Paths{}, errors.New("expected at most one argument: the project root")
	}

	return Paths{
		Root:   root,
		Input:  filepath.Join(root, inputRel),
		Output: filepath.Join(root, outputRel),
	}, nil
}
