// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package soffice locates the LibreOffice executable and runs it in headless
// mode to convert presentations to PDF.
package soffice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	goruntime "runtime"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the child is
// killed.
const waitDelay = 2 * time.Second

// ErrNotFound is returned when no conversion executable can be located.
var ErrNotFound = errors.New("LibreOffice 'soffice' executable not found. Install LibreOffice or pass --soffice PATH")

// programNames are searched on PATH, in order, after the well-known location.
var programNames = []string{"soffice", "soffice.exe"}

// wellKnownPaths maps GOOS to the default LibreOffice install location.
var wellKnownPaths = map[string]string{
	"windows": `C:\Program Files\LibreOffice\program\soffice.exe`,
	"darwin":  "/Applications/LibreOffice.app/Contents/MacOS/soffice",
	"linux":   "/usr/lib/libreoffice/program/soffice",
}

// WellKnownPath returns the default install location for goos. Unknown
// platforms use the Linux layout.
func WellKnownPath(goos string) string {
	if p, ok := wellKnownPaths[goos]; ok {
		return p
	}
	return wellKnownPaths["linux"]
}

// executor abstracts filesystem probes and process execution for testing.
type executor interface {
	Stat(name string) (os.FileInfo, error)
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os and os/exec.
type osExecutor struct{}

func (o *osExecutor) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// soffice hands off to oosplash and soffice.bin, which inherit the
	// output pipes; the whole tree is killed on cancel and Run stops
	// waiting on the pipes after waitDelay.
	killTree(cmd)
	cmd.WaitDelay = waitDelay
	return cmd.Run()
}

var defaultExec = &osExecutor{}

// Resolver finds the conversion executable using a fixed priority order:
// explicit path, platform install location, then PATH.
type Resolver struct {
	exec      executor
	wellKnown string
	warn      io.Writer
}

// NewResolver returns a Resolver for the current platform. Warnings about a
// missing user-supplied path are written to warn.
func NewResolver(warn io.Writer) *Resolver {
	return newResolver(defaultExec, WellKnownPath(goruntime.GOOS), warn)
}

func newResolver(exec executor, wellKnown string, warn io.Writer) *Resolver {
	if warn == nil {
		warn = io.Discard
	}
	return &Resolver{exec: exec, wellKnown: wellKnown, warn: warn}
}

// Resolve returns the executable path. A userPath that exists is returned
// as-is without checking that it is executable. A userPath that does not
// exist produces a warning and resolution continues. When nothing is found
// the error wraps ErrNotFound.
func (r *Resolver) Resolve(userPath string) (string, error) {
	if userPath != "" {
		if _, err := r.exec.Stat(userPath); err == nil {
			return userPath, nil
		}
		fmt.Fprintf(r.warn, "[!] Provided soffice path not found: %s\n", userPath)
	}

	if r.wellKnown != "" {
		if _, err := r.exec.Stat(r.wellKnown); err == nil {
			return r.wellKnown, nil
		}
	}

	for _, name := range programNames {
		if p, err := r.exec.LookPath(name); err == nil {
			return p, nil
		}
	}

	return "", ErrNotFound
}
