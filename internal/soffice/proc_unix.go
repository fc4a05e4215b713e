// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build unix

package soffice

import (
	"os/exec"
	"syscall"
)

// killTree starts cmd in its own process group and makes cancellation kill
// the group rather than only the direct child.
func killTree(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
