// Package geometry checks and measures triangles given by their side lengths.
package geometry

import "math"

// Kind classifies a triangle by its sides.
type Kind int

const (
	KindInvalid Kind = iota
	KindEquilateral
	KindIsosceles
	KindRightAngle
	KindCommon
)

func (k Kind) String() string {
	switch k {
	case KindEquilateral:
		return "equilateral"
	case KindIsosceles:
		return "isosceles"
	case KindRightAngle:
		return "right-angle"
	case KindCommon:
		return "common"
	default:
		return "invalid"
	}
}

// Triangle is described by its three side lengths.
type Triangle struct {
	A, B, C int
}

// IsValid reports whether the sides are positive and satisfy the strict
// triangle inequality.
func (t Triangle) IsValid() bool {
	return t.A > 0 && t.B > 0 && t.C > 0 &&
		t.A+t.B > t.C && t.A+t.C > t.B && t.B+t.C > t.A
}

func (t Triangle) Perimeter() int {
	return t.A + t.B + t.C
}

// Area uses Heron's formula. It is 0 for an invalid triangle.
func (t Triangle) Area() float64 {
	if !t.IsValid() {
		return 0
	}
	s := float64(t.Perimeter()) / 2
	return math.Sqrt(s * (s - float64(t.A)) * (s - float64(t.B)) * (s - float64(t.C)))
}

func (t Triangle) isRightAngle() bool {
	a, b, c := t.A*t.A, t.B*t.B, t.C*t.C
	return a+b == c || a+c == b || b+c == a
}

// Classify checks for equal sides before it checks for a right angle, so an
// isosceles right triangle is reported as isosceles.
func (t Triangle) Classify() Kind {
	switch {
	case !t.IsValid():
		return KindInvalid
	case t.A == t.B && t.B == t.C:
		return KindEquilateral
	case t.A == t.B || t.B == t.C || t.A == t.C:
		return KindIsosceles
	case t.isRightAngle():
		return KindRightAngle
	default:
		return KindCommon
	}
}
