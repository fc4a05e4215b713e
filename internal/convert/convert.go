// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives a batch of presentation-to-PDF conversions: it
// validates the folder, resolves the converter, collects the inputs, and
// converts them one at a time.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/ppt2pdf/internal/collect"
	"github.com/pdiddy/ppt2pdf/internal/console"
	"github.com/pdiddy/ppt2pdf/internal/report"
	"github.com/pdiddy/ppt2pdf/pkg/types"
)

// ErrFolder is returned when the folder to convert does not exist, is not a
// directory, or cannot be listed.
var ErrFolder = errors.New("folder not found or not a directory")

// Converter turns one presentation into a PDF next to it. Implementations
// report failure in the result rather than returning an error.
type Converter interface {
	Convert(ctx context.Context, input string) types.ConversionResult
}

// Resolver locates the conversion executable.
type Resolver interface {
	Resolve(userPath string) (string, error)
}

// FileResult pairs an input with its conversion outcome.
type FileResult struct {
	Entry  types.FileEntry
	Result types.ConversionResult
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Succeeded int
	Failed    int
	Elapsed   time.Duration
	Files     []FileResult
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts a single entry, printing its progress line as file i
// of total. Once ctx is done the converter is not called and the entry is
// reported as failed.
func ConvertFile(ctx context.Context, c Converter, entry types.FileEntry, i, total int, p *console.Printer) types.ConversionResult {
	p.Converting(i, total, filepath.Base(entry.Path))

	var res types.ConversionResult
	if err := ctx.Err(); err != nil {
		res = types.ConversionResult{Success: false, Message: fmt.Sprintf("not converted: %v", err)}
	} else {
		res = c.Convert(ctx, entry.Path)
	}

	p.Done(res.Success, res.Message)
	return res
}

// ConvertBatch converts files sequentially, printing per-file status and a
// closing summary to w. A failed file never stops the batch.
func ConvertBatch(ctx context.Context, c Converter, files []types.FileEntry, w io.Writer) BatchResult {
	p := console.New(w)
	start := time.Now()

	result := BatchResult{Files: make([]FileResult, 0, len(files))}
	for i, f := range files {
		res := ConvertFile(ctx, c, f, i+1, len(files), p)
		if res.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
		result.Files = append(result.Files, FileResult{Entry: f, Result: res})
	}
	result.Elapsed = time.Since(start)

	p.Summary(result.Succeeded, result.Failed, result.Total(), result.Elapsed)
	return result
}

// Run performs a full conversion run. The folder is checked before the
// executable is resolved, and both happen before any file is collected, so a
// fatal error leaves the filesystem untouched. The returned error wraps
// ErrFolder or the resolver's error; per-file failures only show up in the
// BatchResult.
func Run(ctx context.Context, cfg types.RunConfig, r Resolver, newConverter func(exe string) Converter, stdout, stderr io.Writer) (BatchResult, error) {
	root, err := ResolveRoot(cfg.Folder)
	if err != nil {
		return BatchResult{}, err
	}

	exe, err := r.Resolve(cfg.Soffice)
	if err != nil {
		return BatchResult{}, err
	}

	files, err := collect.Collect(root, cfg.Recursive, stderr)
	if err != nil {
		return BatchResult{}, fmt.Errorf("%w: %w", ErrFolder, err)
	}

	console.New(stdout).Found(len(files), root, cfg.Recursive)
	if len(files) == 0 {
		return BatchResult{}, nil
	}

	startedAt := time.Now()
	result := ConvertBatch(ctx, newConverter(exe), files, stdout)

	if cfg.ReportPath != "" {
		rep := &report.Report{
			Root:           root,
			Recursive:      cfg.Recursive,
			Executable:     exe,
			StartedAt:      startedAt.UTC(),
			ElapsedSeconds: result.Elapsed.Seconds(),
		}
		for _, f := range result.Files {
			rep.Add(f.Entry.Path, f.Result.Success, f.Result.Message)
		}
		if err := report.Write(rep, cfg.ReportPath); err != nil {
			return result, err
		}
	}
	return result, nil
}

// ResolveRoot expands a leading ~, makes folder absolute, and follows
// symlinks. It returns an error wrapping ErrFolder unless the result is an
// existing directory.
func ResolveRoot(folder string) (string, error) {
	path := folder
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFolder, folder)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrFolder, abs)
	}
	return abs, nil
}
