// Package validation provides safety checks for the file paths the diagram
// tools read and write. It rejects relative input paths that climb out of
// the working directory and verifies that output directories exist and are
// writable before any drawing happens.
package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned when no path was given
var ErrEmptyPath = errors.New("path cannot be empty")

// ValidateOutputPath validates an output path for accessibility.
// Any writable location is accepted, including relative paths through a
// parent directory. Returns error if the path is empty, is a directory, or
// its directory is missing or not writable.
func ValidateOutputPath(outputPath string) error {
	if strings.TrimSpace(outputPath) == "" {
		return fmt.Errorf("output %w", ErrEmptyPath)
	}

	// Clean the path to resolve any . or .. components
	cleanPath := filepath.Clean(outputPath)

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return fmt.Errorf("output path is a directory: %s", absPath)
	}

	dir := filepath.Dir(absPath)

	dirInfo, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("output directory does not exist: %s: %w", dir, fs.ErrNotExist)
		}
		return fmt.Errorf("failed to access output directory: %w", err)
	}

	if !dirInfo.IsDir() {
		return fmt.Errorf("output path parent is not a directory: %s", dir)
	}

	// Check if directory is writable by attempting to create a temp file
	f, err := os.CreateTemp(dir, ".landingzone_write_test_*")
	if err != nil {
		return fmt.Errorf("output directory is not writable: %s: %w", dir, err)
	}
	f.Close()
	os.Remove(f.Name())

	return nil
}

// ValidateInputPath validates an input path such as a config file
// Returns error if path doesn't exist or is not accessible
func ValidateInputPath(inputPath string, mustBeDir bool) error {
	if strings.TrimSpace(inputPath) == "" {
		return fmt.Errorf("input %w", ErrEmptyPath)
	}

	cleanPath := filepath.Clean(inputPath)

	// Relative paths must not climb out of the working directory
	if climbsOut(cleanPath) {
		return fmt.Errorf("potentially unsafe path detected: %s", inputPath)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input path does not exist: %s: %w", cleanPath, fs.ErrNotExist)
		}
		return fmt.Errorf("failed to access input path: %w", err)
	}

	if mustBeDir && !info.IsDir() {
		return fmt.Errorf("input path must be a directory: %s", cleanPath)
	}

	if !mustBeDir && info.IsDir() {
		return fmt.Errorf("input path must be a file: %s", cleanPath)
	}

	return nil
}

// climbsOut reports whether a cleaned relative path starts with a ".."
// component. File names such as "gcp..v2.hcl" do not count.
func climbsOut(cleanPath string) bool {
	if filepath.IsAbs(cleanPath) {
		return false
	}
	first, _, _ := strings.Cut(filepath.ToSlash(cleanPath), "/")
	return first == ".."
}

// Validator exposes the package checks through the
// interfaces.PathValidator contract
type Validator struct{}

// ValidateOutputPath implements interfaces.PathValidator
func (Validator) ValidateOutputPath(path string) error {
	return ValidateOutputPath(path)
}

// ValidateInputPath implements interfaces.PathValidator
func (Validator) ValidateInputPath(path string, mustBeDir bool) error {
	return ValidateInputPath(path, mustBeDir)
}
