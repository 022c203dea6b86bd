// Package wmiutils wraps WMI queries and namespace discovery. All
// functionality is Windows-only; the package is empty elsewhere.
package wmiutils
