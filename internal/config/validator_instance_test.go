package config

import (
	"testing"
)

func TestGetValidator(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	// Should return the same instance (singleton)
	if v1 != v2 {
		t.Error("GetValidator should return the same instance (singleton pattern)")
	}
}

func TestColorsPathValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		cfg      ColorsConfig
		expected bool
	}{
		{"empty is allowed", ColorsConfig{}, true},
		{"css input", ColorsConfig{Input: "global.css"}, true},
		{"nested css input", ColorsConfig{Input: "./app/styles/Global.CSS"}, true},
		{"non css input", ColorsConfig{Input: "global.scss"}, false},
		{"directory input", ColorsConfig{Input: "styles/"}, false},
		{"go output", ColorsConfig{Output: "internal/ui/tokens/colors_gen.go"}, true},
		{"ts output", ColorsConfig{Output: "constants/Colors.ts"}, false},
		{"nul byte", ColorsConfig{Output: "colors\x00.go"}, false},
		{"identifier package", ColorsConfig{Package: "tokens"}, true},
		{"keyword package", ColorsConfig{Package: "type"}, false},
		{"dashed package", ColorsConfig{Package: "ui-tokens"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.cfg)
			if tt.expected && err != nil {
				t.Errorf("expected %+v to be valid, got %v", tt.cfg, err)
			}
			if !tt.expected && err == nil {
				t.Errorf("expected %+v to be invalid", tt.cfg)
			}
		})
	}
}
