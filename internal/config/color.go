package config

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is an 8-bit per channel color.
type RGBA struct {
	R, G, B, A uint8
}

// ParseColor accepts "#rrggbb", "#rrggbbaa" and the 0x-prefixed forms.
func ParseColor(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
