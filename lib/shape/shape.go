package shape

import (
	"errors"
	"fmt"

	"oss.terrastruct.com/rects/lib/asciicanvas"
	"oss.terrastruct.com/rects/lib/geo"
)

const (
	RECTANGLE_TYPE = "Rectangle"
	SQUARE_TYPE    = "Square"

	// pictures with a side at or beyond this are not drawn
	maxPictureSide   = 50
	pictureCell      = "*"
	tooBigForPicture = "Too big for picture."
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrUnknownType    = errors.New("unknown shape type")
	ErrMalformed      = errors.New("malformed shape")
)

// Sized is anything with a width and a height. It is all GetAmountInside needs to know
// about the shape being fitted.
type Sized interface {
	GetWidth() float64
	GetHeight() float64
}

type Shape interface {
	Sized

	Is(shapeType string) bool
	GetType() string

	SetWidth(width float64)
	SetHeight(height float64)

	GetArea() float64
	GetPerimeter() float64
	GetDiagonal() float64

	// GetPicture draws the shape as rows of asterisks, one line per unit of height
	GetPicture() string

	// GetAmountInside returns how many copies of other fit in the shape.
	// other is never rotated, so each axis is counted on its own.
	GetAmountInside(other Sized) (int, error)

	String() string
}

// baseShape holds the dimensions and the geometry shared by every shape.
// Dimensions are not validated: negative or NaN values flow through the arithmetic.
type baseShape struct {
	Type   string
	width  float64
	height float64
}

func (s *baseShape) Is(shapeType string) bool {
	return s.Type == shapeType
}

func (s *baseShape) GetType() string {
	return s.Type
}

func (s *baseShape) GetWidth() float64 {
	return s.width
}

func (s *baseShape) GetHeight() float64 {
	return s.height
}

func (s *baseShape) SetWidth(width float64) {
	s.width = width
}

func (s *baseShape) SetHeight(height float64) {
	s.height = height
}

func (s *baseShape) GetArea() float64 {
	return s.width * s.height
}

func (s *baseShape) GetPerimeter() float64 {
	return s.width*2 + s.height*2
}

func (s *baseShape) GetDiagonal() float64 {
	return geo.EuclideanDistance(0, 0, s.width, s.height)
}

func (s *baseShape) GetPicture() string {
	if s.width >= maxPictureSide || s.height >= maxPictureSide {
		return tooBigForPicture
	}
	c := asciicanvas.New(pictureCells(s.width), pictureCells(s.height))
	c.Fill(pictureCell)
	return c.String()
}

// pictureCells truncates a dimension to a cell count. Negative and NaN dimensions draw nothing.
func pictureCells(v float64) int {
	if !(v > 0) {
		return 0
	}
	return int(v)
}

func (s *baseShape) GetAmountInside(other Sized) (int, error) {
	if other.GetHeight() == 0 {
		return 0, fmt.Errorf("%w: fitted shape has zero height", ErrDivisionByZero)
	}
	if other.GetWidth() == 0 {
		return 0, fmt.Errorf("%w: fitted shape has zero width", ErrDivisionByZero)
	}
	// int conversion truncates toward zero
	amountInHeight := int(s.height / other.GetHeight())
	amountInWidth := int(s.width / other.GetWidth())
	return amountInHeight * amountInWidth, nil
}

func NewShape(shapeType string, width, height float64) (Shape, error) {
	switch shapeType {
	case RECTANGLE_TYPE:
		return NewRectangle(width, height), nil
	case SQUARE_TYPE:
		if width != height {
			return nil, fmt.Errorf("%w: square with width %s and height %s", ErrMalformed, geo.FormatNumber(width), geo.FormatNumber(height))
		}
		return NewSquare(width), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, shapeType)
	}
}
