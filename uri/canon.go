package uri

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/miekg/dns"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// canonHost returns the canonical form of a URI host.
// IPv6 references keep their brackets.
func canonHost(host string) (string, bool) {
	if !grammar.IsHost(host) {
		return "", false
	}

	if host[0] == '[' {
		addr, err := netip.ParseAddr(host[1 : len(host)-1])
		if err != nil || !addr.Is6() || addr.Zone() != "" {
			return "", false
		}
		return "[" + formatIPv6(addr) + "]", true
	}

	if grammar.IsIPv4(host) {
		addr, err := netip.ParseAddr(host)
		if err != nil {
			return "", false
		}
		return addr.String(), true
	}

	host = util.LCase(host)
	if _, ok := dns.IsDomainName(host); !ok {
		return "", false
	}
	return host, true
}

// formatIPv6 formats addr in the compressed hex form,
// IPv4-mapped addresses get hex groups instead of the dotted tail.
func formatIPv6(addr netip.Addr) string {
	if !addr.Is4In6() {
		return addr.String()
	}
	b := addr.As16()
	return fmt.Sprintf("::ffff:%x:%x", uint16(b[12])<<8|uint16(b[13]), uint16(b[14])<<8|uint16(b[15]))
}

func validPort(port string) bool {
	if !grammar.IsDigits(port) || len(port) > 5 {
		return false
	}
	n, err := strconv.ParseUint(port, 10, 32)
	return err == nil && n <= 65535
}

func isIPHost(host string) bool {
	_, err := netip.ParseAddr(strings.TrimSuffix(strings.TrimPrefix(host, "["), "]"))
	return err == nil
}

// domainIs reports whether host equals domain or is a subdomain of it.
func domainIs(host, domain string) bool {
	if host == "" || domain == "" {
		return false
	}
	if isIPHost(host) || isIPHost(domain) {
		ha, err1 := netip.ParseAddr(strings.Trim(host, "[]"))
		da, err2 := netip.ParseAddr(strings.Trim(domain, "[]"))
		return err1 == nil && err2 == nil && ha == da
	}
	return dns.IsSubDomain(dns.Fqdn(util.LCase(domain)), dns.Fqdn(util.LCase(host)))
}
