// Package netparams resolves host network identity and routing facts that
// the OS does not expose through a single uniform call: the fully-qualified
// DNS domain name, the configured DNS resolvers in priority order, and the
// IPv4/IPv6 default gateways.
//
// Every lookup is best-effort host metadata. Failures are logged and
// reported as empty values; an empty result is indistinguishable from
// "none configured" because the underlying OS surfaces no cheap way to
// tell them apart.
package netparams

import "go.uber.org/zap"

// NetworkParams answers host network configuration queries. It holds no
// state beyond its logger: every method re-queries the OS, so concurrent
// calls are safe and results always reflect the current configuration.
type NetworkParams struct {
	log *zap.SugaredLogger
}

// New returns a NetworkParams using the given logger. A nil logger
// disables diagnostics.
func New(log *zap.SugaredLogger) *NetworkParams {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &NetworkParams{log: log}
}

// DomainName returns the fully-qualified DNS domain name of the local
// host, or "" if it cannot be determined.
func (p *NetworkParams) DomainName() string {
	return p.domainName()
}

// DNSServers returns the configured DNS resolver addresses in the order
// the OS reports them, which reflects configured priority. The slice is
// empty if the configuration cannot be read.
func (p *NetworkParams) DNSServers() []string {
	return p.dnsServers()
}

// IPv4DefaultGateway returns the next-hop address of the preferred IPv4
// default route. "" means unknown: a failed lookup and a host with no
// default route are reported the same way.
func (p *NetworkParams) IPv4DefaultGateway() string {
	return p.ipv4DefaultGateway()
}

// IPv6DefaultGateway returns the next-hop address of the preferred IPv6
// default route. "" means unknown, as for IPv4DefaultGateway.
func (p *NetworkParams) IPv6DefaultGateway() string {
	return p.ipv6DefaultGateway()
}
