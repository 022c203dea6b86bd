package netparams

import (
	"reflect"
	"testing"
)

func addrNode(addr string) *ipAddrString {
	n := &ipAddrString{}
	copy(n.IPAddress[:], addr)
	return n
}

func TestAddrChainStrings(t *testing.T) {
	head := addrNode("8.8.8.8")
	head.Next = addrNode("1.1.1.1")
	head.Next.Next = addrNode("9.9.9.9")

	want := []string{"8.8.8.8", "1.1.1.1", "9.9.9.9"}
	if got := addrChainStrings(head); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddrChainStringsNilHead(t *testing.T) {
	if got := addrChainStrings(nil); len(got) != 0 {
		t.Fatalf("expected no servers, got %v", got)
	}
}

func TestAddrChainStringsNoTerminator(t *testing.T) {
	n := &ipAddrString{}
	for i := range n.IPAddress {
		n.IPAddress[i] = 'x'
	}
	got := addrChainStrings(n)
	if len(got) != 1 || got[0] != "xxxxxxxxxxxxxxxx" {
		t.Fatalf("expected the full 16-byte buffer, got %v", got)
	}
}

func TestAddrChainStringsCycleBound(t *testing.T) {
	// A cyclic chain must terminate at the walk bound.
	a := addrNode("10.0.0.1")
	b := addrNode("10.0.0.2")
	a.Next = b
	b.Next = a

	got := addrChainStrings(a)
	if len(got) != maxAddrNodes {
		t.Fatalf("expected walk to stop after %d nodes, got %d", maxAddrNodes, len(got))
	}
}
