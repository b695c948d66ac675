package shape

import (
	"fmt"

	"oss.terrastruct.com/rects/lib/geo"
)

type Rectangle struct {
	*baseShape
}

func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{
		baseShape: &baseShape{
			Type:   RECTANGLE_TYPE,
			width:  width,
			height: height,
		},
	}
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(width=%s, height=%s)", geo.FormatNumber(r.width), geo.FormatNumber(r.height))
}
