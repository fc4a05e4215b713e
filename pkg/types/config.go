// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunConfig holds the settings for one batch conversion run. Values come from
// command-line flags, the config file, or PPT2PDF_* environment variables.
type RunConfig struct {
	// Folder is the directory to scan for presentation files.
	Folder string `json:"folder" yaml:"folder"`

	// Recursive includes files in subdirectories at any depth.
	Recursive bool `json:"recursive" yaml:"recursive"`

	// Soffice is an optional explicit path to the conversion executable.
	// When empty or missing on disk, the well-known install location and
	// PATH are probed instead.
	Soffice string `json:"soffice,omitempty" yaml:"soffice,omitempty"`

	// Timeout bounds a single conversion. Zero means no limit.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// RequireFresh rejects a PDF whose modification time predates the
	// conversion that was supposed to produce it.
	RequireFresh bool `json:"require_fresh" yaml:"require_fresh"`

	// ReportPath, when set, receives a YAML summary of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`
}
