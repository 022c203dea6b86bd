//go:build !windows && !linux && !darwin
// +build !windows,!linux,!darwin

package netparams

func (p *NetworkParams) ipv4DefaultGateway() string {
	return ""
}

func (p *NetworkParams) ipv6DefaultGateway() string {
	return ""
}
