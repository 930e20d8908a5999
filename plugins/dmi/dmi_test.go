package dmi

import "testing"

func TestDetectVirt(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
		ok   bool
	}{
		{"qemu-product", []string{"Standard PC (i440FX + PIIX, 1996)", "QEMU"}, "QEMU", true},
		{"vmware-prefix", []string{"VMware Virtual Platform"}, "VMware", true},
		{"vmw-short", []string{"VMW7,1"}, "VMware", true},
		{"virtualbox-board", []string{"VirtualBox", "innotek GmbH"}, "VirtualBox", true},
		{"bare-metal", []string{"PowerEdge R640", "Dell Inc."}, "", false},
		{"no-keys", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detectVirt(tt.keys)
			if got != tt.want || ok != tt.ok {
				t.Errorf("detectVirt(%v) = %q, %v; want %q, %v", tt.keys, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestUnspecified(t *testing.T) {
	if !unspecified("") || !unspecified("Not Specified") {
		t.Error("blank vendor strings not treated as unspecified")
	}
	if unspecified("American Megatrends Inc.") {
		t.Error("real vendor treated as unspecified")
	}
}
