// Package color translates user color input into RGB components for the
// lighting encoder. It accepts #RRGGBB or RRGGBB hex strings and a small
// set of well known color names; anything fancier is out of scope.
package color

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var names = map[string][3]int{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"lime":    {0, 255, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"aqua":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"fuchsia": {255, 0, 255},
	"silver":  {192, 192, 192},
	"gray":    {128, 128, 128},
	"maroon":  {128, 0, 0},
	"olive":   {128, 128, 0},
	"purple":  {128, 0, 128},
	"teal":    {0, 128, 128},
	"navy":    {0, 0, 128},
	"orange":  {255, 165, 0},
	"pink":    {255, 192, 203},
	"violet":  {238, 130, 238},
}

// Parse resolves a color name or hex string to RGB components in [0, 255].
func Parse(s string) (r, g, b int, err error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, 0, 0, errors.New("empty color")
	}

	if c, ok := names[s]; ok {
		return c[0], c[1], c[2], nil
	}

	hexStr := strings.TrimPrefix(s, "#")
	if len(hexStr) != 6 {
		return 0, 0, 0, fmt.Errorf("unknown color %q (expected RRGGBB hex or one of: %s)", s, strings.Join(Names(), ", "))
	}
	v, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}

// Names returns the recognized color names in sorted order.
func Names() []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
