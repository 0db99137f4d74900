package nets

import (
	"net"
	"net/netip"
)

// IsLocalAddr reports whether addr resolves to a loopback or private
// address. Local include servers are dialed directly, bypassing any proxy.
type IsLocalAddr func(addr string) (bool, error)

func isLocalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate()
}

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}

		if ip, err := netip.ParseAddr(host); err == nil {
			return isLocalIP(net.IP(ip.AsSlice())), nil
		}

		ips, err := net.LookupIP(host)
		if err != nil {
			// unknown hosts go through the proxy
			return false, nil
		}
		for _, ip := range ips {
			if isLocalIP(ip) {
				return true, nil
			}
		}
		return false, nil
	}
}
