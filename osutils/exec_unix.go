//go:build !windows
// +build !windows

package osutils

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
