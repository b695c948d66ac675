package shape_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"oss.terrastruct.com/util-go/assert"

	"oss.terrastruct.com/rects/lib/geo"
	"oss.terrastruct.com/rects/lib/shape"
)

func TestRectangle(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name      string
		width     float64
		height    float64
		area      float64
		perimeter float64
	}{
		{name: "basic", width: 10, height: 5, area: 50, perimeter: 30},
		{name: "unit", width: 1, height: 1, area: 1, perimeter: 4},
		{name: "fractional", width: 2.5, height: 4, area: 10, perimeter: 13},
		{name: "zero_width", width: 0, height: 7, area: 0, perimeter: 14},
		{name: "negative", width: -3, height: 4, area: -12, perimeter: 2},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := shape.NewRectangle(tc.width, tc.height)
			assert.Equal(t, tc.area, r.GetArea())
			assert.Equal(t, tc.perimeter, r.GetPerimeter())
			assert.Equal(t, 2*(tc.width+tc.height), r.GetPerimeter())

			exp := math.Sqrt(tc.width*tc.width + tc.height*tc.height)
			assert.Equal(t, 0, geo.PrecisionCompare(exp, r.GetDiagonal(), 1e-9))
		})
	}
}

func TestRectangleSetters(t *testing.T) {
	t.Parallel()

	r := shape.NewRectangle(3, 4)
	r.SetWidth(10)
	assert.Equal(t, 10., r.GetWidth())
	assert.Equal(t, 4., r.GetHeight())

	r.SetHeight(2)
	assert.Equal(t, 10., r.GetWidth())
	assert.Equal(t, 2., r.GetHeight())
	assert.Equal(t, 20., r.GetArea())
}

func TestSquareInvariant(t *testing.T) {
	t.Parallel()

	s := shape.NewSquare(9)
	assert.Equal(t, 9., s.GetWidth())
	assert.Equal(t, 9., s.GetHeight())

	steps := []struct {
		name string
		set  func(float64)
		v    float64
	}{
		{"width", s.SetWidth, 4},
		{"height", s.SetHeight, 6},
		{"side", s.SetSide, 2},
		{"height", s.SetHeight, 0},
		{"width", s.SetWidth, 3.5},
	}
	for _, st := range steps {
		st.set(st.v)
		assert.Equal(t, st.v, s.GetWidth())
		assert.Equal(t, st.v, s.GetHeight())
		assert.Equal(t, st.v, s.GetSide())
	}

	// through the interface the override still applies
	var sh shape.Shape = s
	sh.SetWidth(8)
	assert.Equal(t, 8., sh.GetHeight())
	sh.SetHeight(5)
	assert.Equal(t, 5., sh.GetWidth())
}

func TestSquareSubstitutability(t *testing.T) {
	t.Parallel()

	for _, side := range []float64{1, 3, 7.5, 12} {
		var s shape.Shape = shape.NewSquare(side)
		r := shape.NewRectangle(side, side)

		assert.Equal(t, r.GetArea(), s.GetArea())
		assert.Equal(t, r.GetPerimeter(), s.GetPerimeter())
		assert.Equal(t, r.GetDiagonal(), s.GetDiagonal())
		assert.String(t, r.GetPicture(), s.GetPicture())
	}

	s := shape.NewSquare(3)
	assert.Equal(t, 9., s.GetArea())
	assert.Equal(t, 12., s.GetPerimeter())
	assert.Equal(t, 0, geo.PrecisionCompare(3*math.Sqrt2, s.GetDiagonal(), 1e-9))
}

func TestGetPicture(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name  string
		shape shape.Shape
		exp   string
	}{
		{name: "3x2", shape: shape.NewRectangle(3, 2), exp: "***\n***\n"},
		{name: "square", shape: shape.NewSquare(2), exp: "**\n**\n"},
		{name: "single", shape: shape.NewRectangle(1, 1), exp: "*\n"},
		{name: "too_wide", shape: shape.NewRectangle(50, 1), exp: "Too big for picture."},
		{name: "too_tall", shape: shape.NewRectangle(1, 50), exp: "Too big for picture."},
		{name: "too_big_square", shape: shape.NewSquare(60), exp: "Too big for picture."},
		{name: "largest", shape: shape.NewRectangle(49, 1), exp: strings.Repeat("*", 49) + "\n"},
		{name: "zero_height", shape: shape.NewRectangle(4, 0), exp: ""},
		{name: "zero_width", shape: shape.NewRectangle(0, 2), exp: "\n\n"},
		{name: "negative_width", shape: shape.NewRectangle(-3, 2), exp: "\n\n"},
		{name: "negative_height", shape: shape.NewRectangle(3, -2), exp: ""},
		{name: "fractional", shape: shape.NewRectangle(2.9, 1.5), exp: "**\n"},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.String(t, tc.exp, tc.shape.GetPicture())
		})
	}

	p := shape.NewRectangle(49, 49).GetPicture()
	assert.Equal(t, 49, strings.Count(p, "\n"))
	assert.Equal(t, 49*49, strings.Count(p, "*"))
}

type box struct {
	w, h float64
}

func (b box) GetWidth() float64  { return b.w }
func (b box) GetHeight() float64 { return b.h }

func TestGetAmountInside(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name  string
		outer shape.Shape
		inner shape.Sized
		exp   int
	}{
		{name: "squares", outer: shape.NewRectangle(10, 10), inner: shape.NewRectangle(3, 3), exp: 9},
		{name: "rect_square", outer: shape.NewRectangle(10, 4), inner: shape.NewSquare(3), exp: 3},
		{name: "square_rect", outer: shape.NewSquare(8), inner: shape.NewRectangle(4, 1), exp: 16},
		{name: "too_big", outer: shape.NewRectangle(2, 2), inner: shape.NewSquare(3), exp: 0},
		// 16/5 and 16/5 truncate to 3 each, not trunc(10.24)
		{name: "truncated_per_axis", outer: shape.NewSquare(16), inner: shape.NewSquare(5), exp: 9},
		// no rotation: 1x10 does not fit in 10x1
		{name: "no_rotation", outer: shape.NewRectangle(10, 1), inner: shape.NewRectangle(1, 10), exp: 0},
		{name: "structural", outer: shape.NewRectangle(6, 6), inner: box{w: 2, h: 3}, exp: 6},
		{name: "negative_truncates_toward_zero", outer: shape.NewRectangle(-7, 4), inner: shape.NewSquare(2), exp: -6},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n, err := tc.outer.GetAmountInside(tc.inner)
			assert.Success(t, err)
			assert.Equal(t, tc.exp, n)
		})
	}
}

func TestGetAmountInsideDivisionByZero(t *testing.T) {
	t.Parallel()

	r := shape.NewRectangle(10, 10)

	_, err := r.GetAmountInside(shape.NewRectangle(0, 3))
	assert.True(t, errors.Is(err, shape.ErrDivisionByZero))
	assert.ErrorString(t, err, "division by zero: fitted shape has zero width")

	_, err = r.GetAmountInside(shape.NewSquare(0))
	assert.True(t, errors.Is(err, shape.ErrDivisionByZero))
	assert.ErrorString(t, err, "division by zero: fitted shape has zero height")
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.String(t, "Rectangle(width=5, height=10)", shape.NewRectangle(5, 10).String())
	assert.String(t, "Rectangle(width=2.5, height=-1)", shape.NewRectangle(2.5, -1).String())
	assert.String(t, "Square(side=7)", shape.NewSquare(7).String())
	assert.String(t, "Rectangle(width=1e+21, height=0.5)", shape.NewRectangle(1e21, 0.5).String())
	assert.String(t, "Square(side=1e-05)", shape.NewSquare(0.00001).String())

	s := shape.NewSquare(7)
	s.SetWidth(4)
	assert.String(t, "Square(side=4)", s.String())

	var sh shape.Shape = shape.NewSquare(3)
	assert.String(t, "Square(side=3)", sh.String())
}

func TestNewShape(t *testing.T) {
	t.Parallel()

	s, err := shape.NewShape(shape.SQUARE_TYPE, 4, 4)
	assert.Success(t, err)
	assert.True(t, s.Is(shape.SQUARE_TYPE))
	assert.String(t, "Square(side=4)", s.String())

	s, err = shape.NewShape(shape.RECTANGLE_TYPE, 4, 2)
	assert.Success(t, err)
	assert.String(t, shape.RECTANGLE_TYPE, s.GetType())

	_, err = shape.NewShape(shape.SQUARE_TYPE, 4, 2)
	assert.True(t, errors.Is(err, shape.ErrMalformed))
	assert.ErrorString(t, err, "malformed shape: square with width 4 and height 2")

	_, err = shape.NewShape("Circle", 4, 4)
	assert.True(t, errors.Is(err, shape.ErrUnknownType))
}
