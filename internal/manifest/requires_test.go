package manifest

import "testing"

func TestCheckRequires(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		version    string
		wantErr    bool
	}{
		{"empty constraint passes", "", "0.1.0", false},
		{"dev build skips check", ">= 9.0.0", "dev", false},
		{"empty version skips check", ">= 9.0.0", "", false},
		{"satisfied", ">= 0.1.0", "0.2.0", false},
		{"satisfied with v prefix", ">= 0.1.0", "v0.1.0", false},
		{"unsatisfied", ">= 2.0.0", "1.4.0", true},
		{"range satisfied", ">= 0.1.0, < 2.0.0", "1.0.0", false},
		{"invalid constraint", "not-a-range", "1.0.0", true},
		{"invalid version", ">= 0.1.0", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRequires(tt.constraint, tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckRequires(%q, %q) error = %v, wantErr %v", tt.constraint, tt.version, err, tt.wantErr)
			}
		})
	}
}
