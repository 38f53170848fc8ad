package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollide_TouchingEdgesCollide(t *testing.T) {
	a := AABB{CenterX: 0, CenterY: 0, Width: 10, Height: 10}
	b := AABB{CenterX: 10, CenterY: 0, Width: 10, Height: 10}

	assert.True(t, Collide(a, b), "touching edges must collide")
	assert.True(t, Collide(b, a), "collision must be symmetric")

	b.CenterX = 10.01
	assert.False(t, Collide(a, b), "separated by 0.01 must not collide")
}

func TestCollide_Cases(t *testing.T) {
	base := AABB{CenterX: 100, CenterY: 100, Width: 20, Height: 40}

	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"contained", AABB{CenterX: 100, CenterY: 100, Width: 2, Height: 2}, true},
		{"overlap corner", AABB{CenterX: 115, CenterY: 125, Width: 20, Height: 20}, true},
		{"touching top", AABB{CenterX: 100, CenterY: 130, Width: 10, Height: 20}, true},
		{"above", AABB{CenterX: 100, CenterY: 131, Width: 10, Height: 20}, false},
		{"left", AABB{CenterX: 80, CenterY: 100, Width: 19.9, Height: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collide(base, tt.other))
		})
	}
}

func TestV2FNormalize(t *testing.T) {
	assert.Equal(t, Vec2F{}, V2FNormalize(Vec2F{}))

	n := V2FNormalize(Vec2F{X: 3, Y: 4})
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 1.0, V2FMag(n), 1e-9)
}
