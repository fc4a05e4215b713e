// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !unix

package soffice

import "os/exec"

// killTree keeps the default cancellation, which kills only the direct
// child; WaitDelay still bounds the wait on inherited pipes.
func killTree(cmd *exec.Cmd) {}
