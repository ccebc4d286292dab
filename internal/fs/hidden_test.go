package fs

import "testing"

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name   string
		hidden bool
	}{
		{".hidden", true},
		{".", true},
		{"..", true},
		{".git", true},
		{"visible", false},
		{"file.txt", false},
		{"dot.in.middle", false},
		{"trailing.", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsHidden(tt.name); got != tt.hidden {
			t.Errorf("IsHidden(%q) = %v, want %v", tt.name, got, tt.hidden)
		}
		if got := (Entry{Name: tt.name}).IsHidden(); got != tt.hidden {
			t.Errorf("Entry{%q}.IsHidden() = %v, want %v", tt.name, got, tt.hidden)
		}
	}
}
