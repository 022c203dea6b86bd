//go:build windows
// +build windows

package netparams

import "golang.org/x/sys/windows"

func (p *NetworkParams) domainName() string {
	var buf [256]uint16
	size := uint32(len(buf))
	err := windows.GetComputerNameEx(windows.ComputerNameDnsFullyQualified, &buf[0], &size)
	if err != nil {
		p.log.Errorf("Could not get DNS domain name: %v", err)
		return ""
	}
	return windows.UTF16ToString(buf[:size])
}
