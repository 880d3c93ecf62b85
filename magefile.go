//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	binDir  = "bin"
	appName = "freshconnect-admin"
)

var Default = Dev

// Dev: tidy then run with hot reload when air is available.
func Dev() error {
	mg.Deps(Tidy)

	if _, err := exec.LookPath("air"); err == nil {
		fmt.Println("Starting hot-reload with air ...")
		return sh.RunV("air")
	}

	fmt.Println("air not found. Falling back to `go run ./cmd/web`.")
	return Run()
}

func Run() error {
	return sh.RunV("go", "run", "./cmd/web")
}

func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binDir, appName), "./cmd/web")
}

func Test() error {
	return sh.RunV("go", "test", "./...")
}

func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("golangci-lint not found, running go vet instead.")
		return sh.RunV("go", "vet", "./...")
	}
	return sh.RunV("golangci-lint", "run")
}

func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// SeedBackup: write the sample seller dataset into the snapshot store.
func SeedBackup() error {
	return sh.RunV("go", "run", "./cmd/tools/seedbackup")
}
