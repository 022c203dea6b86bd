//go:build !windows
// +build !windows

package netparams

import (
	"os"
	"strings"
)

func (p *NetworkParams) domainName() string {
	host, err := os.Hostname()
	if err != nil {
		p.log.Errorf("Could not get hostname: %v", err)
		return ""
	}
	if strings.Contains(host, ".") {
		return host
	}
	// Short hostname: qualify it with the resolver search domain.
	if domain := resolvConfDomain(resolvConfPath); domain != "" {
		return host + "." + domain
	}
	return host
}
