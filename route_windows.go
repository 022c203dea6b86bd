//go:build windows
// +build windows

package netparams

import (
	"fmt"
	"strings"

	"github.com/hostwire/netparams/osutils"
	"github.com/hostwire/netparams/wmiutils"
)

const standardCimv2 = "StandardCimv2"

// MSFT_NetRoute is a row of the StandardCimv2 routing table, named after
// the WMI class it unmarshals.
type MSFT_NetRoute struct {
	NextHop     string
	RouteMetric uint16
}

// Win32_IP4RouteTable is a row of the pre-StandardCimv2 IPv4 routing
// table.
type Win32_IP4RouteTable struct {
	NextHop string
	Metric1 int32
}

// Collaborator seams, replaced in tests.
var (
	wmiQuery       = wmiutils.Query
	probeNamespace = wmiutils.HasNamespace
	runRouteCmd    = osutils.RunCommand
)

func (p *NetworkParams) ipv4DefaultGateway() string {
	switch pickRouteSource("ip4", probeNamespace(standardCimv2)) {
	case modernTable:
		return p.nextHop(ipv4DefaultDest)
	default:
		// The legacy table is keyed by bare address, not prefix.
		return p.nextHopLegacy(strings.SplitN(ipv4DefaultDest, "/", 2)[0])
	}
}

func (p *NetworkParams) ipv6DefaultGateway() string {
	switch pickRouteSource("ip6", probeNamespace(standardCimv2)) {
	case modernTable:
		return p.nextHop(ipv6DefaultDest)
	default:
		return p.ipv6RouteFromCommand()
	}
}

// nextHop queries the modern routing table for routes to the given
// destination prefix and picks the lowest-metric next-hop.
func (p *NetworkParams) nextHop(dest string) string {
	var routes []MSFT_NetRoute
	q := fmt.Sprintf(`SELECT NextHop, RouteMetric FROM MSFT_NetRoute WHERE DestinationPrefix="%s"`, dest)
	if err := wmiQuery(q, &routes, `ROOT\`+standardCimv2); err != nil {
		p.log.Errorf("MSFT_NetRoute query failed: %v", err)
		return ""
	}
	candidates := make([]routeCandidate, 0, len(routes))
	for _, r := range routes {
		candidates = append(candidates, routeCandidate{nextHop: r.NextHop, metric: uint32(r.RouteMetric)})
	}
	return selectBestRoute(candidates)
}

// nextHopLegacy is nextHop against the legacy IPv4 table, for hosts that
// predate the StandardCimv2 namespace.
func (p *NetworkParams) nextHopLegacy(dest string) string {
	var routes []Win32_IP4RouteTable
	q := fmt.Sprintf(`SELECT NextHop, Metric1 FROM Win32_IP4RouteTable WHERE Destination="%s"`, dest)
	if err := wmiQuery(q, &routes, ""); err != nil {
		p.log.Errorf("Win32_IP4RouteTable query failed: %v", err)
		return ""
	}
	candidates := make([]routeCandidate, 0, len(routes))
	for _, r := range routes {
		candidates = append(candidates, routeCandidate{nextHop: r.NextHop, metric: uint32(r.Metric1)})
	}
	return selectBestRoute(candidates)
}

// ipv6RouteFromCommand is the last-resort IPv6 source: no structured
// table exists, so scrape the routing diagnostic command.
func (p *NetworkParams) ipv6RouteFromCommand() string {
	lines, err := runRouteCmd("route", "print", "-6", ipv6DefaultDest)
	if err != nil {
		p.log.Errorf("route print failed: %v", err)
		return ""
	}
	return parseIPv6RouteLines(lines)
}
