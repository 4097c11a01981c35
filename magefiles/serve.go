//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Serve builds the binary and runs the HTTP API with text logs.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "serve", "--log-format", "text")
}

// Gaps prints the content gaps for a keyword.
func Gaps(query string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "gaps", query)
}
