// Package cidr expands IPv4 CIDR blocks into their usable host addresses.
//
// For prefixes up to /30 the network and broadcast addresses are excluded
// from the result. /31 point-to-point links and /32 single hosts have no
// reserved addresses, so every address in the block is usable.
//
// Example:
//
//	hosts, err := cidr.Hosts("192.168.1.0/24")
//	// hosts = [192.168.1.1 ... 192.168.1.254], ascending
package cidr
