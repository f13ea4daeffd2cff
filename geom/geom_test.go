package geom

import (
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

func TestGeom_Distance(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(5.0, Distance(0, 0, 3, 4))
	assert.Equal(0.0, Distance(7, 7, 7, 7))
}

func TestGeom_ParseTranslate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		x, y  float64
		ok    bool
	}{
		{"identity keyword", "none", 0, 0, true},
		{"empty", "", 0, 0, true},
		{"2d matrix", "matrix(1, 0, 0, 1, 15, -20)", 15, -20, true},
		{"2d scaled matrix", "matrix(2, 0, 0, 2, 12.5, 7)", 12.5, 7, true},
		{"3d matrix", "matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 30, 40, 0, 1)", 30, 40, true},
		{"wrong arity", "matrix(1, 0, 0, 1, 15)", 0, 0, false},
		{"not a number", "matrix(1, 0, 0, 1, abc, 2)", 0, 0, false},
		{"unsupported", "translate(10px, 20px)", 0, 0, false},
		{"unterminated", "matrix(1, 0, 0, 1, 1, 2", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ParseTranslate(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseTranslate(%q) ok expected to be %v. Got %v", tt.input, tt.ok, ok)
			}
			if x != tt.x || y != tt.y {
				t.Errorf("ParseTranslate(%q) expected to be (%v, %v). Got (%v, %v)", tt.input, tt.x, tt.y, x, y)
			}
		})
	}
}

func TestGeom_FormatMatrix(t *testing.T) {
	assert := assert.New(t)

	s := FormatMatrix(Transform(15, 20, 2))
	assert.Equal("matrix(2, 0, 0, 2, 15, 20)", s)

	x, y, ok := ParseTranslate(s)
	assert.True(ok)
	assert.Equal(15.0, x)
	assert.Equal(20.0, y)
}

func TestGeom_AffineScalesAroundCenter(t *testing.T) {
	assert := assert.New(t)

	a := Affine(10, 0, 2, 100, 100)
	// The center stays in place apart from the translation.
	assert.Equal(f32.Pt(60, 50), a.Transform(f32.Pt(50, 50)))
	// The top-left corner moves outwards by half of the growth.
	assert.Equal(f32.Pt(-40, -50), a.Transform(f32.Pt(0, 0)))
}
