package cidr

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"sort"

	"github.com/projectdiscovery/mapcidr"
)

// InvalidSubnetError indicates a subnet string that is not valid IPv4 CIDR
// notation. It is an input error, not a scan outcome.
type InvalidSubnetError struct {
	Subnet string
	Err    error
}

func (e *InvalidSubnetError) Error() string {
	return fmt.Sprintf("invalid subnet %q: %s", e.Subnet, e.Err)
}

func (e *InvalidSubnetError) Unwrap() error {
	return e.Err
}

// Hosts returns every usable host address in the subnet, sorted ascending by
// numeric value. The result is deterministic: expanding the same subnet twice
// yields identical output.
func Hosts(subnet string) ([]net.IP, error) {
	ip, network, err := net.ParseCIDR(subnet)
	if err != nil {
		return nil, &InvalidSubnetError{Subnet: subnet, Err: err}
	}
	if ip.To4() == nil {
		return nil, &InvalidSubnetError{Subnet: subnet, Err: errors.New("only IPv4 subnets are supported")}
	}

	ips, err := mapcidr.IPAddresses(network.String())
	if err != nil {
		return nil, &InvalidSubnetError{Subnet: subnet, Err: err}
	}

	ones, _ := network.Mask.Size()
	hosts := make([]net.IP, 0, len(ips))
	for _, ipStr := range ips {
		host := net.ParseIP(ipStr)
		if host == nil {
			continue
		}
		// /31 and /32 blocks have no distinct network/broadcast addresses
		if ones <= 30 && isNetworkOrBroadcast(host, network) {
			continue
		}
		hosts = append(hosts, host.To4())
	}

	sort.Slice(hosts, func(i, j int) bool {
		return Compare(hosts[i], hosts[j]) < 0
	})
	return hosts, nil
}

// Compare orders two IPv4 addresses numerically. Returns -1 if a < b,
// 0 if equal, 1 if a > b.
func Compare(a, b net.IP) int {
	return bytes.Compare(a.To4(), b.To4())
}

// isNetworkOrBroadcast checks if an IP is the network or broadcast address
// of an IPv4 network.
func isNetworkOrBroadcast(ip net.IP, network *net.IPNet) bool {
	if ip.Equal(network.IP) {
		return true
	}

	broadcast := make(net.IP, len(network.IP))
	copy(broadcast, network.IP)
	for i := range broadcast {
		broadcast[i] |= ^network.Mask[i]
	}
	return ip.Equal(broadcast)
}
