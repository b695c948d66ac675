package shape

import (
	"fmt"

	"oss.terrastruct.com/rects/lib/geo"
)

// Square is a Rectangle whose width and height are always equal.
// Every setter moves both sides together.
type Square struct {
	*baseShape
}

func NewSquare(side float64) *Square {
	return &Square{
		baseShape: &baseShape{
			Type:   SQUARE_TYPE,
			width:  side,
			height: side,
		},
	}
}

func (s *Square) GetSide() float64 {
	return s.width
}

func (s *Square) SetSide(side float64) {
	s.width = side
	s.height = side
}

func (s *Square) SetWidth(width float64) {
	s.SetSide(width)
}

func (s *Square) SetHeight(height float64) {
	s.SetSide(height)
}

func (s *Square) String() string {
	return fmt.Sprintf("Square(side=%s)", geo.FormatNumber(s.width))
}
