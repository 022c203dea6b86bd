//go:build !windows
// +build !windows

package netparams

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseResolvConf(t *testing.T) {
	conf := `# Generated by NetworkManager
search example.com
nameserver 10.0.0.1
nameserver 2001:4860:4860::8888
nameserver not-an-address
options edns0
`
	want := []string{"10.0.0.1", "2001:4860:4860::8888"}
	got := parseResolvConf(strings.NewReader(conf))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseResolvConfEmpty(t *testing.T) {
	if got := parseResolvConf(strings.NewReader("")); len(got) != 0 {
		t.Fatalf("expected no servers, got %v", got)
	}
}

func TestResolvConfDomain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	conf := "nameserver 10.0.0.1\ndomain corp.example.com\nsearch other.example.com\n"
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}
	if got := resolvConfDomain(path); got != "corp.example.com" {
		t.Fatalf("expected corp.example.com, got %q", got)
	}
}

func TestResolvConfDomainMissingFile(t *testing.T) {
	if got := resolvConfDomain(filepath.Join(t.TempDir(), "missing")); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
