//go:build windows
// +build windows

package wmiutils

import (
	"strings"

	"github.com/yusufpapurcu/wmi"
)

// Query runs a WQL query against the given namespace and unmarshals the
// rows into dst, a pointer to a slice of structs whose fields name the
// requested properties. An empty namespace uses the WMI default
// (ROOT\CIMV2).
func Query(query string, dst interface{}, namespace string) error {
	if namespace == "" {
		return wmi.Query(query, dst)
	}
	return wmi.QueryNamespace(query, dst, namespace)
}

type namespaceEntry struct {
	Name string
}

// HasNamespace reports whether the named WMI namespace exists under
// ROOT. Probe failures read as absence: callers fall back to older data
// sources either way.
func HasNamespace(name string) bool {
	var entries []namespaceEntry
	if err := wmi.QueryNamespace("SELECT Name FROM __NAMESPACE", &entries, `ROOT`); err != nil {
		return false
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return true
		}
	}
	return false
}
