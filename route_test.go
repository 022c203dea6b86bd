package netparams

import "testing"

func TestSelectBestRouteLowestMetricWins(t *testing.T) {
	candidates := []routeCandidate{
		{nextHop: "10.0.0.1", metric: 30},
		{nextHop: "10.0.0.2", metric: 10},
		{nextHop: "10.0.0.3", metric: 10},
	}
	if got := selectBestRoute(candidates); got != "10.0.0.2" {
		t.Fatalf("expected 10.0.0.2, got %q", got)
	}
}

func TestSelectBestRouteTieKeepsFirst(t *testing.T) {
	candidates := []routeCandidate{
		{nextHop: "192.168.1.1", metric: 25},
		{nextHop: "192.168.1.254", metric: 25},
	}
	if got := selectBestRoute(candidates); got != "192.168.1.1" {
		t.Fatalf("tie must keep the earliest candidate, got %q", got)
	}
}

func TestSelectBestRouteEmpty(t *testing.T) {
	if got := selectBestRoute(nil); got != "" {
		t.Fatalf("expected empty string for no candidates, got %q", got)
	}
}

func TestSelectBestRouteSingleCandidate(t *testing.T) {
	// A lone candidate wins even with the worst possible metric.
	candidates := []routeCandidate{{nextHop: "fe80::1", metric: ^uint32(0)}}
	if got := selectBestRoute(candidates); got != "fe80::1" {
		t.Fatalf("expected fe80::1, got %q", got)
	}
}

func TestPickRouteSource(t *testing.T) {
	cases := []struct {
		network string
		modern  bool
		want    routeSource
	}{
		{"ip4", true, modernTable},
		{"ip4", false, legacyTable},
		{"ip6", true, modernTable},
		{"ip6", false, textFallback},
	}
	for _, c := range cases {
		if got := pickRouteSource(c.network, c.modern); got != c.want {
			t.Errorf("pickRouteSource(%q, %v) = %v, want %v", c.network, c.modern, got, c.want)
		}
	}
}
