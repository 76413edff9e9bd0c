package pulse

import (
	"fmt"

	"github.com/oliverbestmann/raiders/glm"
	"golang.org/x/exp/constraints"
)

type numeric interface {
	constraints.Unsigned | constraints.Float
}

type Rectangle2u = Rectangle2[uint32]

// Rectangle2 is an axis aligned rectangle. Min is inclusive, Max is exclusive.
type Rectangle2[T numeric] struct {
	Min glm.Vec2[T]
	Max glm.Vec2[T]
}

func RectangleFromSize[T numeric](pos glm.Vec2[T], size glm.Vec2[T]) Rectangle2[T] {
	return Rectangle2[T]{Min: pos, Max: pos.Add(size)}
}

func (r Rectangle2[T]) Size() glm.Vec2[T] {
	return r.Max.Sub(r.Min)
}

func (r Rectangle2[T]) Width() T {
	return r.Size()[0]
}

func (r Rectangle2[T]) Height() T {
	return r.Size()[1]
}

// Contains reports whether other lies completely within r.
func (r Rectangle2[T]) Contains(other Rectangle2[T]) bool {
	return other.Min[0] >= r.Min[0] && other.Min[1] >= r.Min[1] &&
		other.Max[0] <= r.Max[0] && other.Max[1] <= r.Max[1]
}

func (r Rectangle2[T]) String() string {
	return fmt.Sprintf("[%v,%v %vx%v]", r.Min[0], r.Min[1], r.Width(), r.Height())
}
