package canvas

import "strconv"

// RGB is a parsed color triple.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// HexToRGB parses a "#RRGGBB" string. Malformed input yields black, which
// mirrors how the renderer treats unknown colors.
func HexToRGB(s string) RGB {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}
	}
	r, err1 := strconv.ParseUint(s[0:2], 16, 8)
	g, err2 := strconv.ParseUint(s[2:4], 16, 8)
	b, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return RGB{}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// DistanceSquared returns the squared Euclidean distance to another color.
func (c RGB) DistanceSquared(o RGB) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

// Within reports whether the Euclidean distance to o is at most tol.
func (c RGB) Within(o RGB, tol int) bool {
	return c.DistanceSquared(o) <= tol*tol
}
