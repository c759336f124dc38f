package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/smasonuk/gosiebox"
)

// LuxuryColors overrides the finish of the luxury box. Each field is a
// palette name such as "walnut" or a #rrggbb colour; empty keeps the
// default.
type LuxuryColors struct {
	Wood     string `json:"wood,omitempty"`
	Interior string `json:"interior,omitempty"`
	Trim     string `json:"trim,omitempty"`
	Gem      string `json:"gem,omitempty"`
}

// LuxuryPalette is a resolved luxury finish.
type LuxuryPalette struct {
	Wood     color.RGBA
	Interior color.RGBA
	Trim     color.RGBA
	Gem      color.RGBA
}

// Named finishes of the luxury box.
var (
	WoodColors = map[string]string{
		"mahogany": "#5C0000",
		"walnut":   "#8B4513",
		"ebony":    "#3D2B1F",
		"oak":      "#D4A76A",
		"cherry":   "#990000",
	}
	InteriorColors = map[string]string{
		"burgundy": "#800020",
		"emerald":  "#046307",
		"navy":     "#000080",
		"purple":   "#4B0082",
		"black":    "#121212",
	}
	TrimColors = map[string]string{
		"gold":      "#FFD700",
		"silver":    "#C0C0C0",
		"rose-gold": "#B76E79",
		"bronze":    "#CD7F32",
		"platinum":  "#E5E4E2",
	}
	GemColors = map[string]string{
		"ruby":     "#FF0000",
		"emerald":  "#50C878",
		"sapphire": "#0F52BA",
		"amethyst": "#9966CC",
		"diamond":  "#B9F2FF",
	}
)

// DefaultLuxury is walnut with a burgundy lining, gold trim and a ruby.
func DefaultLuxury() LuxuryColors {
	return LuxuryColors{Wood: "walnut", Interior: "burgundy", Trim: "gold", Gem: "ruby"}
}

func resolveColor(kind string, palette map[string]string, v, def string) (color.RGBA, error) {
	if v == "" {
		v = def
	}
	if hex, ok := palette[strings.ToLower(strings.TrimSpace(v))]; ok {
		v = hex
	}
	c, err := gosiebox.ParseHexColor(v)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s: %w", kind, err)
	}
	return c, nil
}

// Palette resolves every field, filling empty ones from DefaultLuxury.
func (c LuxuryColors) Palette() (LuxuryPalette, error) {
	def := DefaultLuxury()
	var (
		p   LuxuryPalette
		err error
	)
	if p.Wood, err = resolveColor("wood", WoodColors, c.Wood, def.Wood); err != nil {
		return LuxuryPalette{}, err
	}
	if p.Interior, err = resolveColor("interior", InteriorColors, c.Interior, def.Interior); err != nil {
		return LuxuryPalette{}, err
	}
	if p.Trim, err = resolveColor("trim", TrimColors, c.Trim, def.Trim); err != nil {
		return LuxuryPalette{}, err
	}
	if p.Gem, err = resolveColor("gem", GemColors, c.Gem, def.Gem); err != nil {
		return LuxuryPalette{}, err
	}
	return p, nil
}
