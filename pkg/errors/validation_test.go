package errors

import (
	"math"
	"testing"
)

func TestValidateDirection(t *testing.T) {
	for d := -2; d <= 7; d++ {
		err := ValidateDirection(d)
		wantErr := d < 0 || d > 5
		if (err != nil) != wantErr {
			t.Errorf("ValidateDirection(%d) error = %v, wantErr %v", d, err, wantErr)
		}
		if wantErr && !Is(err, ErrCodeInvalidDirection) {
			t.Errorf("ValidateDirection(%d) code = %v", d, GetCode(err))
		}
	}
}

func TestValidateGridSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"reference", 7, 7, false},
		{"single cell", 1, 1, false},
		{"max", MaxGridSize, MaxGridSize, false},

		{"zero width", 0, 7, true},
		{"negative height", 7, -1, true},
		{"too wide", MaxGridSize + 1, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGridSize(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGridSize(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePoint(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"negative", -120.5, 33, false},

		{"nan", math.NaN(), 0, true},
		{"inf", 0, math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePoint(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePoint(%v, %v) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	allowed := []string{"svg", "json", "png"}
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"single", []string{"svg"}, false},
		{"all", []string{"svg", "json", "png"}, false},

		{"empty", nil, true},
		{"unknown", []string{"svg", "pdf"}, true},
		{"case", []string{"SVG"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.input, allowed...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormats(%v) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "tracks/loop.toml", false},
		{"absolute", "/tmp/loop.yaml", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 501)), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
