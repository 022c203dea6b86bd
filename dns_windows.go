//go:build windows
// +build windows

package netparams

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modiphlpapi          = windows.NewLazySystemDLL("iphlpapi.dll")
	procGetNetworkParams = modiphlpapi.NewProc("GetNetworkParams")
)

// fixedInfo mirrors the iphlpapi FIXED_INFO record returned by
// GetNetworkParams. Only DNSServerList is consumed here; the preceding
// fields must keep the native layout so the cast lines up.
type fixedInfo struct {
	HostName         [132]byte
	DomainName       [132]byte
	CurrentDNSServer *ipAddrString
	DNSServerList    ipAddrString
	NodeType         uint32
	ScopeID          [260]byte
	EnableRouting    uint32
	EnableProxy      uint32
	EnableDNS        uint32
}

func getNetworkParams(buf *byte, size *uint32) uint32 {
	r0, _, _ := procGetNetworkParams.Call(
		uintptr(unsafe.Pointer(buf)),
		uintptr(unsafe.Pointer(size)))
	return uint32(r0)
}

func (p *NetworkParams) dnsServers() []string {
	// Size probe first: a nil buffer must come back with
	// ERROR_BUFFER_OVERFLOW and the required length.
	var size uint32
	ret := getNetworkParams(nil, &size)
	if ret != uint32(windows.ERROR_BUFFER_OVERFLOW) {
		p.log.Errorf("Could not get network parameters buffer size, status %d", ret)
		return nil
	}

	buf := make([]byte, size)
	ret = getNetworkParams(&buf[0], &size)
	if ret != 0 {
		p.log.Errorf("Could not get network parameters, status %d", ret)
		return nil
	}

	// The chain nodes live inside buf; keep it alive past the walk.
	fi := (*fixedInfo)(unsafe.Pointer(&buf[0]))
	servers := addrChainStrings(&fi.DNSServerList)
	runtime.KeepAlive(buf)
	return servers
}
