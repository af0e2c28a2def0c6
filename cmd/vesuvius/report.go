package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vesuvius/internal/diag"
	"vesuvius/internal/driver"
)

// fatalDiagnostic converts a driver error into the diagnostic to print.
// Read failures point at the offending command-line argument.
func fatalDiagnostic(err error, args []string) diag.Diagnostic {
	var lerr *driver.LoadError
	if errors.As(err, &lerr) {
		msg := fmt.Sprintf("File `%s` was not found", lerr.Path)
		if !errors.Is(lerr.Err, os.ErrNotExist) {
			msg = fmt.Sprintf("File `%s` could not be read: %v", lerr.Path, lerr.Err)
		}
		return diag.CommandLine(diag.CLIFileFailedToRead, args, argIndex(args, lerr.Path), msg)
	}
	if d, ok := driver.AsDiagnostic(err); ok {
		return d
	}
	return diag.Internal(err.Error())
}

// argIndex finds the argument that names path, or the directory argument
// it was expanded from. The program name (index 0) is never matched.
func argIndex(args []string, path string) int {
	clean := filepath.Clean(path)
	for i := len(args) - 1; i > 0; i-- {
		if filepath.Clean(args[i]) == clean {
			return i
		}
	}
	for i := len(args) - 1; i > 0; i-- {
		dir := filepath.Clean(args[i]) + string(filepath.Separator)
		if strings.HasPrefix(clean, dir) {
			return i
		}
	}
	return 0
}

// reportFatal prints the fatal diagnostic of err and returns errFailed.
func (s *session) reportFatal(err error) error {
	s.reporter.Report(fatalDiagnostic(err, os.Args))
	return errFailed
}
