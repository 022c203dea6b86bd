//go:build !windows
// +build !windows

package netparams

import (
	"bufio"
	"io"
	"net"
	"os"
	"strings"
)

const resolvConfPath = "/etc/resolv.conf"

func (p *NetworkParams) dnsServers() []string {
	file, err := os.Open(resolvConfPath)
	if err != nil {
		p.log.Errorf("Could not read %s: %v", resolvConfPath, err)
		return nil
	}
	defer file.Close()

	return parseResolvConf(file)
}

// parseResolvConf collects nameserver addresses in file order, which is
// the resolver priority order.
func parseResolvConf(r io.Reader) []string {
	var servers []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != "nameserver" {
			continue
		}
		if net.ParseIP(fields[1]) != nil {
			servers = append(servers, fields[1])
		}
	}
	return servers
}

// resolvConfDomain returns the first "domain" or "search" entry, used to
// qualify a short hostname.
func resolvConfDomain(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if fields[0] == "domain" || fields[0] == "search" {
			return fields[1]
		}
	}
	return ""
}
