//go:build mage

// Package main provides build targets for rawcoll using Mage.
//
// Usage:
//
//	mage build    Compile rawcoll-demo to bin/
//	mage test     Run all tests with the race detector
//	mage bench    Run benchmarks for every package
//	mage lint     Run go vet and golangci-lint
//	mage demo     Build and run rawcoll-demo with its defaults
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "rawcoll-demo"
	binaryDir  = "bin"
	cmdDir     = "./cmd/rawcoll-demo"
)

// Build compiles the rawcoll-demo binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs all benchmarks without the unit tests.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", "./...")
}

// Lint runs go vet, then golangci-lint when it is installed.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if _, err := sh.Output("golangci-lint", "version"); err != nil {
		return nil
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Demo builds the binary and runs it with its default configuration.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName))
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binaryDir)
}
