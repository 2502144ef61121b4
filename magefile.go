//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "bin/logcolor"
	mainPkg = "./cmd/logcolor"
	verPkg  = "github.com/dkoosis/logcolor/internal/version"
)

// Default target - build the binary
var Default = Build

// Build builds the logcolor binary with version metadata.
func Build() error {
	mg.Deps(Tidy)
	ldflags := fmt.Sprintf("-s -w -X %s.Version=%s -X %s.CommitHash=%s -X %s.BuildDate=%s",
		verPkg, gitOutput("describe", "--tags", "--always", "--dirty"),
		verPkg, gitOutput("rev-parse", "--short", "HEAD"),
		verPkg, time.Now().UTC().Format(time.RFC3339))
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binary, mainPkg)
}

// Install installs logcolor into GOBIN.
func Install() error {
	return sh.RunV("go", "install", mainPkg)
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Tidy ensures go.mod matches the imports.
func Tidy() error {
	return sh.Run("go", "mod", "tidy")
}

// QA runs formatting, vet, tests and lint.
func QA() error {
	if out, err := sh.Output("gofmt", "-l", "."); err != nil {
		return err
	} else if strings.TrimSpace(out) != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	mg.Deps(Test)
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Fprintln(os.Stderr, "golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || out == "" {
		return "unknown"
	}
	return out
}
