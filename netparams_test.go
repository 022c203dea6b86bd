package netparams

import (
	"reflect"
	"testing"
)

func TestNewNilLogger(t *testing.T) {
	p := New(nil)
	// Must not panic through the logging paths.
	_ = p.DomainName()
}

func TestLookupsAreIdempotent(t *testing.T) {
	p := New(nil)
	if a, b := p.DomainName(), p.DomainName(); a != b {
		t.Errorf("DomainName changed between calls: %q vs %q", a, b)
	}
	if a, b := p.DNSServers(), p.DNSServers(); !reflect.DeepEqual(a, b) {
		t.Errorf("DNSServers changed between calls: %v vs %v", a, b)
	}
}
