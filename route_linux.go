//go:build linux
// +build linux

package netparams

import (
	"encoding/hex"
	"net"
	"os"
	"strconv"
	"strings"
)

const (
	procRoute     = "/proc/net/route"
	procIPv6Route = "/proc/net/ipv6_route"

	zeroIPv6Hex = "00000000000000000000000000000000"
)

func (p *NetworkParams) ipv4DefaultGateway() string {
	data, err := os.ReadFile(procRoute)
	if err != nil {
		p.log.Errorf("Could not read %s: %v", procRoute, err)
		return ""
	}
	return selectBestRoute(parseProcRoute(data))
}

func (p *NetworkParams) ipv6DefaultGateway() string {
	data, err := os.ReadFile(procIPv6Route)
	if err != nil {
		p.log.Errorf("Could not read %s: %v", procIPv6Route, err)
		return ""
	}
	return selectBestRoute(parseProcIPv6Route(data))
}

// parseProcRoute extracts default-route candidates from /proc/net/route.
// A default entry has an all-zero destination and mask; the gateway is a
// little-endian hex quad and the metric is decimal.
func parseProcRoute(data []byte) []routeCandidate {
	var candidates []routeCandidate
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 8 || fields[1] != "00000000" || fields[7] != "00000000" {
			continue
		}
		gw, err := strconv.ParseUint(fields[2], 16, 32)
		if err != nil || gw == 0 {
			continue
		}
		metric, err := strconv.ParseUint(fields[6], 10, 32)
		if err != nil {
			continue
		}
		ip := net.IPv4(byte(gw), byte(gw>>8), byte(gw>>16), byte(gw>>24))
		candidates = append(candidates, routeCandidate{nextHop: ip.String(), metric: uint32(metric)})
	}
	return candidates
}

// parseProcIPv6Route extracts default-route candidates from
// /proc/net/ipv6_route: zero destination with prefix length 00, a
// non-zero next-hop, and a hex metric.
func parseProcIPv6Route(data []byte) []routeCandidate {
	var candidates []routeCandidate
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 10 || fields[0] != zeroIPv6Hex || fields[1] != "00" {
			continue
		}
		if fields[4] == zeroIPv6Hex {
			// On-link route, no gateway.
			continue
		}
		raw, err := hex.DecodeString(fields[4])
		if err != nil || len(raw) != net.IPv6len {
			continue
		}
		metric, err := strconv.ParseUint(fields[5], 16, 32)
		if err != nil {
			continue
		}
		candidates = append(candidates, routeCandidate{nextHop: net.IP(raw).String(), metric: uint32(metric)})
	}
	return candidates
}
