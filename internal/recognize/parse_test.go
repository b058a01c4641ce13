package recognize

import (
	"math"
	"testing"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		wantErr bool
	}{
		{"integer", "24", 24, false},
		{"decimal", "24.5", 24.5, false},
		{"padded", "  240  ", 240, false},
		{"mixed fraction", "3 1/2", 3.5, false},
		{"loose fraction spacing", "3 1 / 2", 3.5, false},
		{"feet and inches", `12'6"`, 12.5, false},
		{"feet only", "12'", 12, false},
		{"inches only", `6"`, 0.5, false},
		{"inches with fraction", `6 1/2"`, 6.5 / 12, false},
		{"feet inches fraction", `5'3 3/4"`, 5.3125, false},
		{"curly quotes", "12’6”", 12.5, false},
		{"prime marks", "12′6″", 12.5, false},
		{"empty", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"letters", "hallway", 0, true},
		{"zero denominator", "3 1/0", 0, true},
		{"stray punctuation", "12'6", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDimension(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDimension(%q): expected error, got %v", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDimension(%q): %v", tt.text, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseDimension(%q): got %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
