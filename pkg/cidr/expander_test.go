package cidr

import (
	"errors"
	"net"
	"reflect"
	"testing"
)

func TestHosts(t *testing.T) {
	tests := []struct {
		name      string
		subnet    string
		wantCount int
		wantErr   bool
		validate  func(t *testing.T, hosts []net.IP)
	}{
		{
			name:      "/24 network",
			subnet:    "192.168.1.0/24",
			wantCount: 254,
			validate: func(t *testing.T, hosts []net.IP) {
				if got := hosts[0].String(); got != "192.168.1.1" {
					t.Errorf("first host = %s, want 192.168.1.1", got)
				}
				if got := hosts[len(hosts)-1].String(); got != "192.168.1.254" {
					t.Errorf("last host = %s, want 192.168.1.254", got)
				}
				for _, host := range hosts {
					if host.Equal(net.ParseIP("192.168.1.0")) {
						t.Error("network address should be excluded")
					}
					if host.Equal(net.ParseIP("192.168.1.255")) {
						t.Error("broadcast address should be excluded")
					}
				}
			},
		},
		{
			name:      "/30 network",
			subnet:    "10.0.0.0/30",
			wantCount: 2,
			validate: func(t *testing.T, hosts []net.IP) {
				if hosts[0].String() != "10.0.0.1" || hosts[1].String() != "10.0.0.2" {
					t.Errorf("hosts = %v, want [10.0.0.1 10.0.0.2]", hosts)
				}
			},
		},
		{
			name:      "/31 point-to-point includes both addresses",
			subnet:    "10.0.0.0/31",
			wantCount: 2,
			validate: func(t *testing.T, hosts []net.IP) {
				if hosts[0].String() != "10.0.0.0" || hosts[1].String() != "10.0.0.1" {
					t.Errorf("hosts = %v, want [10.0.0.0 10.0.0.1]", hosts)
				}
			},
		},
		{
			name:      "/32 single host",
			subnet:    "10.0.0.0/32",
			wantCount: 1,
			validate: func(t *testing.T, hosts []net.IP) {
				if hosts[0].String() != "10.0.0.0" {
					t.Errorf("host = %s, want 10.0.0.0", hosts[0])
				}
			},
		},
		{
			name:      "non-zero host bits normalized to network",
			subnet:    "192.168.1.17/28",
			wantCount: 14,
			validate: func(t *testing.T, hosts []net.IP) {
				if got := hosts[0].String(); got != "192.168.1.17" {
					t.Errorf("first host = %s, want 192.168.1.17", got)
				}
			},
		},
		{
			name:    "not a subnet",
			subnet:  "not-a-subnet",
			wantErr: true,
		},
		{
			name:    "prefix out of range",
			subnet:  "192.168.1.0/33",
			wantErr: true,
		},
		{
			name:    "IPv6 rejected",
			subnet:  "2001:db8::/64",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hosts, err := Hosts(tt.subnet)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Hosts(%q) expected error, got none", tt.subnet)
				}
				var invalidErr *InvalidSubnetError
				if !errors.As(err, &invalidErr) {
					t.Fatalf("Hosts(%q) error = %T, want *InvalidSubnetError", tt.subnet, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Hosts(%q) unexpected error: %v", tt.subnet, err)
			}
			if len(hosts) != tt.wantCount {
				t.Fatalf("Hosts(%q) returned %d hosts, want %d", tt.subnet, len(hosts), tt.wantCount)
			}
			for i := 1; i < len(hosts); i++ {
				if Compare(hosts[i-1], hosts[i]) >= 0 {
					t.Fatalf("hosts not strictly ascending at index %d: %s >= %s", i, hosts[i-1], hosts[i])
				}
			}
			if tt.validate != nil {
				tt.validate(t, hosts)
			}
		})
	}
}

func TestHostsIdempotent(t *testing.T) {
	first, err := Hosts("172.16.0.0/26")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Hosts("172.16.0.0/26")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expanding the same subnet twice should yield identical output")
	}
}

func TestCompare(t *testing.T) {
	a := net.ParseIP("10.0.0.1")
	b := net.ParseIP("10.0.0.2")
	if Compare(a, b) >= 0 {
		t.Error("10.0.0.1 should sort before 10.0.0.2")
	}
	if Compare(b, a) <= 0 {
		t.Error("10.0.0.2 should sort after 10.0.0.1")
	}
	if Compare(a, a) != 0 {
		t.Error("an address should compare equal to itself")
	}
}
