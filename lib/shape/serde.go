package shape

import (
	"fmt"

	"oss.terrastruct.com/util-go/go2"

	"oss.terrastruct.com/rects/lib/geo"
)

// SerializedShape is the wire form of a Shape. Area, Perimeter and Diagonal are
// derived on output and ignored on input.
type SerializedShape struct {
	Type   string   `json:"type" yaml:"type"`
	Width  float64  `json:"width" yaml:"width"`
	Height float64  `json:"height" yaml:"height"`
	Side   *float64 `json:"side,omitempty" yaml:"side,omitempty"`

	Area      float64 `json:"area" yaml:"-"`
	Perimeter float64 `json:"perimeter" yaml:"-"`
	Diagonal  float64 `json:"diagonal" yaml:"-"`
}

func Serialize(s Shape) SerializedShape {
	ss := SerializedShape{
		Type:      s.GetType(),
		Width:     s.GetWidth(),
		Height:    s.GetHeight(),
		Area:      s.GetArea(),
		Perimeter: s.GetPerimeter(),
		Diagonal:  geo.TruncateDecimals(s.GetDiagonal()),
	}
	if sq, ok := s.(*Square); ok {
		ss.Side = go2.Pointer(sq.GetSide())
	}
	return ss
}

// Deserialize builds a Shape from its wire form. The type name is matched like Parse does
// and a square may be given by side alone. A width or height given next to side must equal it.
func Deserialize(ss SerializedShape) (Shape, error) {
	shapeType, ok := canonicalType(ss.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, ss.Type)
	}
	width, height := ss.Width, ss.Height
	if ss.Side != nil {
		if shapeType != SQUARE_TYPE {
			return nil, fmt.Errorf("%w: side given for %s", ErrMalformed, shapeType)
		}
		side := *ss.Side
		if (width != 0 && width != side) || (height != 0 && height != side) {
			return nil, fmt.Errorf("%w: square with side %s, width %s and height %s", ErrMalformed,
				geo.FormatNumber(side), geo.FormatNumber(width), geo.FormatNumber(height))
		}
		width, height = side, side
	}
	return NewShape(shapeType, width, height)
}
