package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "Connect with: ssh localhost -p 23234"},
		{":2222", "Connect with: ssh localhost -p 2222"},
		{"0.0.0.0:2022", "Connect with: ssh localhost -p 2022"},
		{"[::1]:4000", "Connect with: ssh localhost -p 4000"},
		{":22", "Connect with: ssh localhost"},
		{"2345", "Connect with: ssh localhost -p 2345"},
	}

	for _, tt := range tests {
		if got := connectHint(tt.addr); got != tt.want {
			t.Errorf("connectHint(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
