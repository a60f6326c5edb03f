package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"", ColorDefault, true},
		{"green", ColorGreen, true},
		{"Bright_Green", ColorBrightGreen, true},
		{" orange ", ColorOrange, true},
		{"grey", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseColor(tt.name)
			if c != tt.expected || ok != tt.ok {
				t.Errorf("ParseColor(%q) = %v, %v, expected %v, %v", tt.name, c, ok, tt.expected, tt.ok)
			}
		})
	}
}
