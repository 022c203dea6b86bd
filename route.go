package netparams

import "math"

const (
	ipv4DefaultDest = "0.0.0.0/0"
	ipv6DefaultDest = "::/0"
)

// routeCandidate is one route to a destination as reported by the OS,
// reduced to the two facts route selection needs.
type routeCandidate struct {
	nextHop string
	metric  uint32
}

// routeSource identifies which routing data source answers a default
// gateway query on this host.
type routeSource int

const (
	// modernTable is the structured routing table available on newer
	// OS releases. Preferred whenever present; covers both families.
	modernTable routeSource = iota
	// legacyTable is the older IPv4-only structured table, keyed by
	// exact destination address instead of prefix.
	legacyTable
	// textFallback parses routing diagnostic command output. Last
	// resort for IPv6 hosts without the modern table.
	textFallback
)

// pickRouteSource selects the routing source for an address family
// ("ip4" or "ip6") given whether the modern table exists. There is no
// legacy structured table for IPv6.
func pickRouteSource(network string, modernAvailable bool) routeSource {
	if modernAvailable {
		return modernTable
	}
	if network == "ip4" {
		return legacyTable
	}
	return textFallback
}

// selectBestRoute picks the next-hop of the candidate with the lowest
// metric, mirroring the OS's own route selection. Ties keep the earliest
// candidate. Returns "" for an empty candidate list.
func selectBestRoute(candidates []routeCandidate) string {
	if len(candidates) == 0 {
		return ""
	}
	best := 0
	min := uint32(math.MaxUint32)
	for i, c := range candidates {
		if c.metric < min {
			min = c.metric
			best = i
		}
	}
	return candidates[best].nextHop
}
