package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangle_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		tri      Triangle
		expected bool
	}{
		{"Right angle", Triangle{3, 4, 5}, true},
		{"Equilateral", Triangle{2, 2, 2}, true},
		{"Degenerate", Triangle{1, 2, 3}, false},
		{"Too long side", Triangle{1, 1, 5}, false},
		{"Zero side", Triangle{0, 4, 4}, false},
		{"Negative side", Triangle{-1, 5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tri.IsValid())
		})
	}
}

func TestTriangle_Measures(t *testing.T) {
	tri := Triangle{3, 4, 5}
	assert.Equal(t, 12, tri.Perimeter())
	assert.InDelta(t, 6.0, tri.Area(), 1e-9)

	assert.InDelta(t, 43.30127, Triangle{10, 10, 10}.Area(), 1e-5)
	assert.Equal(t, 0.0, Triangle{1, 2, 3}.Area())
}

func TestTriangle_Classify(t *testing.T) {
	tests := []struct {
		tri      Triangle
		expected Kind
	}{
		{Triangle{1, 2, 3}, KindInvalid},
		{Triangle{7, 7, 7}, KindEquilateral},
		{Triangle{5, 5, 8}, KindIsosceles},
		{Triangle{8, 5, 5}, KindIsosceles},
		{Triangle{5, 12, 13}, KindRightAngle},
		{Triangle{13, 5, 12}, KindRightAngle},
		{Triangle{4, 5, 6}, KindCommon},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tri.Classify())
		})
	}
}
