package bankprofile

import (
	"log/slog"
	"testing"
)

func TestLoadEmbeddedRegistry(t *testing.T) {
	reg, err := Load(slog.Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(reg.Profiles()) == 0 {
		t.Fatal("expected at least one profile")
	}
	for _, p := range reg.Profiles() {
		if p.Name == "" {
			t.Error("profile with empty name")
		}
		if len(p.Senders) == 0 {
			t.Errorf("profile %q has no senders", p.Name)
		}
	}
}

func TestResolve(t *testing.T) {
	reg, err := Load(slog.Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name     string
		sender   string
		wantBank string
	}{
		{name: "hdfc vm header", sender: "VM-HDFCBK", wantBank: "HDFC Bank"},
		{name: "hdfc short code", sender: "HDFCBK", wantBank: "HDFC Bank"},
		{name: "sbi upi header", sender: "SBIUPI", wantBank: "State Bank of India"},
		{name: "paytm", sender: "VM-PAYTMB", wantBank: "Paytm Payments Bank"},
		{name: "unknown sender", sender: "XX-NOBANK", wantBank: ""},
		{name: "case sensitive", sender: "vm-hdfcbk", wantBank: ""},
		{name: "empty sender", sender: "", wantBank: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.Resolve(tt.sender)
			if tt.wantBank == "" {
				if got != nil {
					t.Errorf("Resolve(%q) = %q, want nil", tt.sender, got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("Resolve(%q) = nil, want %q", tt.sender, tt.wantBank)
			}
			if got.Name != tt.wantBank {
				t.Errorf("Resolve(%q) = %q, want %q", tt.sender, got.Name, tt.wantBank)
			}
		})
	}
}

func TestLoadRejectsInvalidRegistry(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{"profiles":`},
		{name: "missing profiles", raw: `{}`},
		{name: "empty profiles", raw: `{"profiles":[]}`},
		{name: "profile without senders", raw: `{"profiles":[{"name":"X Bank"}]}`},
		{name: "bad rule regex", raw: `{"profiles":[{"name":"X Bank","senders":["XBANK"],"rules":{"amount":"(["}}]}`},
		{name: "rule without capture group", raw: `{"profiles":[{"name":"X Bank","senders":["XBANK"],"rules":{"amount":"Rs\\d+"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load([]byte(tt.raw), slog.Default()); err == nil {
				t.Errorf("load(%q) succeeded, want error", tt.raw)
			}
		})
	}
}
