package tour

import (
	"context"
	"fmt"
	"io"
)

// Pi is the truncated classroom constant, kept at exactly 3.14159 rather
// than math.Pi: the printed areas (and their tests) are computed from it.
const Pi = 3.14159

// Point pairs two coordinates of any single type. Once constructed it is
// never mutated.
type Point[T any] struct {
	X, Y T
}

// Shape is anything with a computable area.
type Shape interface {
	Area() float64
}

// Circle implements Shape from a radius alone.
type Circle struct {
	Radius float64
}

// Area returns Pi times the radius squared.
func (c Circle) Area() float64 {
	return Pi * c.Radius * c.Radius
}

// runShapes instantiates the generic Point with ints, then computes an area
// through the Shape interface so the call site never names Circle.
func (r *Runner) runShapes(ctx context.Context, w io.Writer) error {
	point := Point[int]{X: 10, Y: 20}
	fmt.Fprintf(w, "Point coordinates: (%d, %d)\n", point.X, point.Y)

	var shape Shape = Circle{Radius: 5.0}
	fmt.Fprintf(w, "Circle area: %.2f\n", shape.Area())
	return nil
}
