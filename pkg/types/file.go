// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shared between the collector, the soffice
// invoker, and the conversion driver.
package types

// Recognized presentation extensions, lowercase with the leading dot.
const (
	ExtPPT  = ".ppt"
	ExtPPTX = ".pptx"
)

// FileEntry is a candidate input file found by the collector.
type FileEntry struct {
	// Path is the filesystem path of the presentation.
	Path string `json:"path" yaml:"path"`

	// Ext is the lowercase extension, either ExtPPT or ExtPPTX.
	Ext string `json:"ext" yaml:"ext"`
}

// ConversionResult is the outcome of converting one FileEntry.
type ConversionResult struct {
	// Success is true when the expected PDF exists after the invocation.
	Success bool `json:"success" yaml:"success"`

	// Message is the converter's stdout, else its stderr, else the error
	// text from launching or running it.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}
