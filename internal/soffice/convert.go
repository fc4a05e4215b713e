// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package soffice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/ppt2pdf/pkg/types"
)

// Options tunes a Converter.
type Options struct {
	// Timeout bounds one invocation. Zero means no limit.
	Timeout time.Duration

	// RequireFresh rejects a PDF older than the invocation start.
	RequireFresh bool
}

// Converter runs a resolved soffice binary once per input file. The exit
// status is ignored; success means the expected PDF exists afterwards,
// because soffice reports misleading exit codes.
type Converter struct {
	exe  string
	exec executor
	opts Options
	now  func() time.Time
}

// NewConverter returns a Converter for the executable at exe.
func NewConverter(exe string, opts Options) *Converter {
	return newConverter(defaultExec, exe, opts)
}

func newConverter(exec executor, exe string, opts Options) *Converter {
	return &Converter{exe: exe, exec: exec, opts: opts, now: time.Now}
}

// Exe returns the executable path the converter invokes.
func (c *Converter) Exe() string { return c.exe }

// Args builds the headless conversion arguments for input. The PDF is
// written next to the input file.
func Args(input string) []string {
	return []string{"--headless", "--convert-to", "pdf", "--outdir", filepath.Dir(input), input}
}

// PDFPath returns the path soffice writes for input: same directory and base
// name with a .pdf extension.
func PDFPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
}

// Convert invokes soffice on input and reports whether the PDF now exists.
// Launch failures are returned as a failed result, never as an error.
func (c *Converter) Convert(ctx context.Context, input string) types.ConversionResult {
	runCtx := ctx
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	start := c.now()
	var stdout, stderr bytes.Buffer
	err := c.exec.Run(runCtx, c.exe, Args(input), &stdout, &stderr)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) && runCtx.Err() == nil {
		return types.ConversionResult{Success: false, Message: err.Error()}
	}

	msg := strings.TrimSpace(stdout.String())
	if msg == "" {
		msg = strings.TrimSpace(stderr.String())
	}
	if msg == "" && err != nil {
		msg = c.errText(runCtx, err)
	}

	pdf := PDFPath(input)
	info, statErr := c.exec.Stat(pdf)
	if statErr != nil {
		if msg == "" {
			msg = fmt.Sprintf("no PDF produced at %s", pdf)
		}
		return types.ConversionResult{Success: false, Message: msg}
	}

	// Filesystems with coarse mtimes round down, so compare whole seconds.
	if c.opts.RequireFresh && info.ModTime().Before(start.Truncate(time.Second)) {
		stale := fmt.Sprintf("stale PDF at %s predates this conversion", pdf)
		if msg != "" {
			stale += "; " + msg
		}
		return types.ConversionResult{Success: false, Message: stale}
	}

	return types.ConversionResult{Success: true, Message: msg}
}

func (c *Converter) errText(ctx context.Context, err error) string {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && c.opts.Timeout > 0 {
		return fmt.Sprintf("timed out after %s", c.opts.Timeout)
	}
	if ctx.Err() != nil {
		return ctx.Err().Error()
	}
	return err.Error()
}
