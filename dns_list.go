package netparams

// ipAddrString mirrors the iphlpapi IP_ADDR_STRING record: a node in the
// singly-linked chain of address entries hanging off FIXED_INFO. The
// address is a fixed 16-byte buffer holding a NUL-terminated dotted quad.
type ipAddrString struct {
	Next      *ipAddrString
	IPAddress [16]byte
	IPMask    [16]byte
	Context   uint32
}

// maxAddrNodes bounds the chain walk so a malformed or cyclic native
// list cannot hang the caller.
const maxAddrNodes = 64

// addrChainStrings walks the linked chain from head and collects each
// node's address string in traversal order, which is the order the OS
// reports resolver priority.
func addrChainStrings(head *ipAddrString) []string {
	var addrs []string
	for node, n := head, 0; node != nil && n < maxAddrNodes; node, n = node.Next, n+1 {
		addrs = append(addrs, stringToNul(node.IPAddress[:]))
	}
	return addrs
}
