package gog

import (
	"fmt"
	"strconv"
	"strings"
)

var namedColors = map[string]Color{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {192, 0, 192, 255},
	"orange":  {255, 128, 0, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
}

// parseColor reads a color name, "hex 0xAABBGGRR" or a bare "0xAABBGGRR".
// Hex colors are packed alpha, blue, green, red from the high byte down.
func parseColor(args []string) (Color, error) {
	if len(args) == 0 {
		return Color{}, fmt.Errorf("missing color")
	}
	word := strings.ToLower(args[0])
	if c, ok := namedColors[word]; ok {
		return c, nil
	}
	if word == "hex" {
		if len(args) < 2 {
			return Color{}, fmt.Errorf("missing hex color value")
		}
		word = strings.ToLower(args[1])
	} else if !strings.HasPrefix(word, "0x") {
		return Color{}, fmt.Errorf("unknown color %q", args[0])
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(word, "0x"), 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", word)
	}
	return Color{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}, nil
}
