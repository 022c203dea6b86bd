package netparams

import (
	"bytes"
	"strings"
)

// stringToNul returns the contents of b up to the first NUL byte. Native
// fixed-size address buffers carry garbage after the terminator; a buffer
// with no terminator at all is used in full.
func stringToNul(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// parseIPv6RouteLines scans routing diagnostic output for the IPv6
// default route. A line qualifies when, split on whitespace, it has more
// than three fields and its third field is the ::/0 destination; the
// fourth field is the next-hop. The first qualifying line wins: the
// command lists routes in the OS's preference order and its output
// carries no usable metric.
func parseIPv6RouteLines(lines []string) string {
	for _, line := range lines {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) > 3 && fields[2] == ipv6DefaultDest {
			return fields[3]
		}
	}
	return ""
}

// parseRouteGetLine extracts the gateway from "route -n get" style
// output, which reports one "gateway: <addr>" line for a resolvable
// destination.
func parseRouteGetLine(lines []string) string {
	for _, line := range lines {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 2 && fields[0] == "gateway:" {
			return fields[1]
		}
	}
	return ""
}
