// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package soffice

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	existing map[string]bool // path -> whether Stat succeeds
	onPath   map[string]bool // binary -> whether LookPath succeeds
	statFunc func(name string) (os.FileInfo, error)
	runFunc  func(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
	lookups  []string
	runs     int
}

func (m *mockExecutor) Stat(name string) (os.FileInfo, error) {
	if m.statFunc != nil {
		return m.statFunc(name)
	}
	if m.existing[name] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	m.lookups = append(m.lookups, file)
	if m.onPath[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	m.runs++
	if m.runFunc != nil {
		return m.runFunc(ctx, name, args, stdout, stderr)
	}
	return nil
}

const testWellKnown = "/opt/libreoffice/program/soffice"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		userPath string
		exec     *mockExecutor
		want     string
		wantWarn string
		wantErr  bool
	}{
		{
			name:     "explicit path that exists wins",
			userPath: "/custom/soffice",
			exec: &mockExecutor{
				existing: map[string]bool{"/custom/soffice": true, testWellKnown: true},
				onPath:   map[string]bool{"soffice": true},
			},
			want: "/custom/soffice",
		},
		{
			name:     "missing explicit path warns and falls through to well-known",
			userPath: "/missing/soffice",
			exec: &mockExecutor{
				existing: map[string]bool{testWellKnown: true},
			},
			want:     testWellKnown,
			wantWarn: "Provided soffice path not found: /missing/soffice",
		},
		{
			name: "well-known location before PATH",
			exec: &mockExecutor{
				existing: map[string]bool{testWellKnown: true},
				onPath:   map[string]bool{"soffice": true},
			},
			want: testWellKnown,
		},
		{
			name: "PATH lookup of soffice",
			exec: &mockExecutor{
				onPath: map[string]bool{"soffice": true, "soffice.exe": true},
			},
			want: "/usr/bin/soffice",
		},
		{
			name: "PATH lookup falls back to soffice.exe",
			exec: &mockExecutor{
				onPath: map[string]bool{"soffice.exe": true},
			},
			want: "/usr/bin/soffice.exe",
		},
		{
			name:     "nothing found",
			userPath: "/missing/soffice",
			exec:     &mockExecutor{},
			wantWarn: "Provided soffice path not found",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warn bytes.Buffer
			r := newResolver(tt.exec, testWellKnown, &warn)

			got, err := r.Resolve(tt.userPath)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotFound)
				assert.Contains(t, err.Error(), "--soffice PATH")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			if tt.wantWarn == "" {
				assert.Empty(t, warn.String())
			} else {
				assert.Contains(t, warn.String(), tt.wantWarn)
			}
		})
	}
}

func TestResolveSearchesBothProgramNames(t *testing.T) {
	exec := &mockExecutor{}
	_, err := newResolver(exec, "", nil).Resolve("")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"soffice", "soffice.exe"}, exec.lookups)
}

func TestWellKnownPath(t *testing.T) {
	assert.Equal(t, `C:\Program Files\LibreOffice\program\soffice.exe`, WellKnownPath("windows"))
	assert.Equal(t, "/Applications/LibreOffice.app/Contents/MacOS/soffice", WellKnownPath("darwin"))
	assert.Equal(t, "/usr/lib/libreoffice/program/soffice", WellKnownPath("linux"))
	assert.Equal(t, WellKnownPath("linux"), WellKnownPath("freebsd"))
}
