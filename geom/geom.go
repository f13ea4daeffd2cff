// Package geom implements the small set of 2D helpers needed by the transform engine:
// distances between touch points and the conversion between the transform matrix
// strings reported by a style accessor and gio affine transformations.
package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gioui.org/f32"
)

// Distance returns the euclidean distance between (x0, y0) and (x1, y1).
func Distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// Transform returns the style transform of an element translated by (x, y)
// and scaled by scale. The transform origin is not part of the matrix.
func Transform(x, y, scale float64) f32.Affine2D {
	s := float32(scale)
	return f32.NewAffine2D(s, 0, float32(x), 0, s, float32(y))
}

// Affine returns the transformation used for drawing a w*h surface translated
// by (x, y) and scaled by scale around its center.
func Affine(x, y, scale, w, h float64) f32.Affine2D {
	origin := f32.Pt(float32(w/2), float32(h/2))
	return f32.Affine2D{}.
		Scale(origin, f32.Pt(float32(scale), float32(scale))).
		Offset(f32.Pt(float32(x), float32(y)))
}

// FormatMatrix encodes a into the matrix(a, b, c, d, tx, ty) notation.
func FormatMatrix(a f32.Affine2D) string {
	sx, hx, ox, hy, sy, oy := a.Elems()
	return fmt.Sprintf("matrix(%s, %s, %s, %s, %s, %s)",
		ftoa(sx), ftoa(hy), ftoa(hx), ftoa(sy), ftoa(ox), ftoa(oy))
}

// ParseMatrix decodes a matrix(...) or matrix3d(...) transform string.
// The "none" keyword and the empty string decode to the identity.
func ParseMatrix(s string) (f32.Affine2D, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return f32.Affine2D{}, true
	}
	var name string
	switch {
	case strings.HasPrefix(s, "matrix3d("):
		name = "matrix3d"
	case strings.HasPrefix(s, "matrix("):
		name = "matrix"
	default:
		return f32.Affine2D{}, false
	}
	if !strings.HasSuffix(s, ")") {
		return f32.Affine2D{}, false
	}
	fields := strings.Split(s[len(name)+1:len(s)-1], ",")
	vals := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil || math.IsNaN(v) {
			return f32.Affine2D{}, false
		}
		vals[i] = float32(v)
	}

	switch {
	case name == "matrix" && len(vals) == 6:
		a, b, c, d, tx, ty := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]
		return f32.NewAffine2D(a, c, tx, b, d, ty), true
	case name == "matrix3d" && len(vals) == 16:
		// Column major, the translation lives in the 4th column.
		return f32.NewAffine2D(vals[0], vals[4], vals[12], vals[1], vals[5], vals[13]), true
	}
	return f32.Affine2D{}, false
}

// ParseTranslate recovers the translation pair of a transform string.
func ParseTranslate(s string) (x, y float64, ok bool) {
	a, ok := ParseMatrix(s)
	if !ok {
		return 0, 0, false
	}
	_, _, ox, _, _, oy := a.Elems()
	return float64(ox), float64(oy), true
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
