//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the viewer binary.
func (Build) Viewer() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/meshview", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the viewer with the GL validation protocol compiled in.
func (Build) Debug() error {
	if _, err := executeCmd("go", withArgs("build", "-tags", "gldebug", "-o", "bin/meshview-debug", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the full test suite.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
