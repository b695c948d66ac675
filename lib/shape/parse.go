package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// canonicalType maps the accepted spellings of a shape type to its *_TYPE constant.
func canonicalType(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle", "rect":
		return RECTANGLE_TYPE, true
	case "square", "sq":
		return SQUARE_TYPE, true
	}
	return "", false
}

// Parse reads a shape from its text form: rectangle:WxH or square:S.
// Dimensions are not range checked, rectangle:-2x3 is a valid rectangle.
func Parse(s string) (Shape, error) {
	typ, dims, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q: expected <type>:<dimensions>", ErrMalformed, s)
	}
	shapeType, ok := canonicalType(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}

	switch shapeType {
	case SQUARE_TYPE:
		side, err := parseDimension(dims)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
		}
		return NewSquare(side), nil
	default:
		w, h, ok := strings.Cut(strings.ToLower(dims), "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q: expected <width>x<height>", ErrMalformed, s)
		}
		width, err := parseDimension(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
		}
		height, err := parseDimension(h)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
		}
		return NewRectangle(width, height), nil
	}
}

func parseDimension(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q", s)
	}
	return v, nil
}
