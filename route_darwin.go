//go:build darwin
// +build darwin

package netparams

import "github.com/hostwire/netparams/osutils"

func (p *NetworkParams) ipv4DefaultGateway() string {
	lines, err := osutils.RunCommand("/sbin/route", "-n", "get", "default")
	if err != nil {
		p.log.Errorf("route get failed: %v", err)
		return ""
	}
	return parseRouteGetLine(lines)
}

func (p *NetworkParams) ipv6DefaultGateway() string {
	lines, err := osutils.RunCommand("/sbin/route", "-n", "get", "-inet6", "default")
	if err != nil {
		p.log.Errorf("route get failed: %v", err)
		return ""
	}
	return parseRouteGetLine(lines)
}
