package utils

import (
	"fmt"
	"math/rand"
	"regexp"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// RandomAccentColor returns a random #RRGGBB color code. Seeded
// defaults use a fixed palette; user-created well-beings get one of
// these.
func RandomAccentColor() string {
	return fmt.Sprintf("#%06X", rand.Intn(0x1000000))
}

// ValidHexColor reports whether s is a 6-digit hex color code.
func ValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
