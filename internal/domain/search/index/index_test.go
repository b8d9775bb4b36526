package index

import "testing"

func TestValid(t *testing.T) {
	for _, n := range All() {
		if !Valid(n) {
			t.Errorf("expected %q to be valid", n)
		}
	}
	for _, n := range []Name{"", "courses", "JOBS", "jobs "} {
		if Valid(n) {
			t.Errorf("expected %q to be invalid", n)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []Name
	}{
		{"empty falls back", nil, All()},
		{"all invalid falls back", []string{"bogus", "nope"}, All()},
		{"keeps valid drops invalid", []string{"news", "bogus"}, []Name{News}},
		{"dedup canonical order", []string{"units", "jobs", "units"}, []Name{Jobs, Units}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}
