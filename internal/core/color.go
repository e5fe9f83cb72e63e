package core

import "image/color"

// Color is a palette index for a screen cell.
// Terminal front ends map it to an ANSI color, pixel front ends to RGBA.
type Color uint8

// Palette entries. The first block mirrors ANSI colors; the second names
// the game palette (brick rows, items, paddle, ball).
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorIndigo
	ColorViolet
	ColorEmerald
	ColorBackground
)

// rgba holds the pixel values used by the window front end.
var rgba = map[Color]color.RGBA{
	ColorDefault:    {0xff, 0xff, 0xff, 0xff},
	ColorRed:        {0xef, 0x44, 0x44, 0xff},
	ColorGreen:      {0x10, 0xb9, 0x81, 0xff},
	ColorYellow:     {0xfa, 0xcc, 0x15, 0xff},
	ColorBlue:       {0x3b, 0x82, 0xf6, 0xff},
	ColorMagenta:    {0xd9, 0x46, 0xef, 0xff},
	ColorCyan:       {0x22, 0xd3, 0xee, 0xff},
	ColorWhite:      {0xff, 0xff, 0xff, 0xff},
	ColorGray:       {0x9c, 0xa3, 0xaf, 0xff},
	ColorOrange:     {0xf5, 0x9e, 0x0b, 0xff},
	ColorIndigo:     {0x63, 0x66, 0xf1, 0xff},
	ColorViolet:     {0x8b, 0x5c, 0xf6, 0xff},
	ColorEmerald:    {0x10, 0xb9, 0x81, 0xff},
	ColorBackground: {0x1a, 0x1a, 0x2e, 0xff},
}

// RGBA returns the pixel color for c.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[ColorDefault]
}

// ANSI returns the 256-color code used by terminal renderers.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "9"
	case ColorGreen, ColorEmerald:
		return "10"
	case ColorYellow:
		return "11"
	case ColorBlue:
		return "12"
	case ColorMagenta:
		return "13"
	case ColorCyan:
		return "14"
	case ColorWhite:
		return "15"
	case ColorGray:
		return "245"
	case ColorOrange:
		return "214"
	case ColorIndigo:
		return "63"
	case ColorViolet:
		return "99"
	case ColorBackground:
		return "236"
	default:
		return ""
	}
}
