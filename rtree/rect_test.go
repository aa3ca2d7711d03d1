package rtree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRect_InvalidBounds(t *testing.T) {
	_, err := NewRect(1, 0, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRectangle))

	_, err = NewRect(0, 1, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRectangle))
}

func TestNewRect_DegenerateAllowed(t *testing.T) {
	r, err := NewRect(1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Area())
}

func TestRect_Area(t *testing.T) {
	r := mustRect(0, 0, 3, 4)
	assert.Equal(t, 12.0, r.Area())
}

func TestRect_Union_Identity(t *testing.T) {
	r := mustRect(1, 1, 5, 5)
	assert.Equal(t, r, r.Union(r))
}

func TestRect_Union_Commutative(t *testing.T) {
	r := mustRect(0, 0, 2, 2)
	s := mustRect(5, 5, 7, 7)
	assert.Equal(t, r.Union(s), s.Union(r))
}

func TestRect_Union_Associative(t *testing.T) {
	r := mustRect(0, 0, 1, 1)
	s := mustRect(3, 3, 4, 4)
	u := mustRect(-2, -2, -1, -1)
	assert.Equal(t, r.Union(s).Union(u), r.Union(s.Union(u)))
}

func TestRect_Enlargement_SelfIsZero(t *testing.T) {
	r := mustRect(0, 0, 2, 2)
	assert.Equal(t, 0.0, r.Enlargement(r))
}

func TestRect_Enlargement_NeverNegative(t *testing.T) {
	outer := mustRect(0, 0, 10, 10)
	inner := mustRect(2, 2, 3, 3)
	assert.Equal(t, 0.0, outer.Enlargement(inner))
}

func TestRect_Intersects_Commutative(t *testing.T) {
	r := mustRect(0, 0, 2, 2)
	s := mustRect(1, 1, 3, 3)
	assert.Equal(t, r.Intersects(s), s.Intersects(r))

	disjoint := mustRect(10, 10, 11, 11)
	assert.Equal(t, r.Intersects(disjoint), disjoint.Intersects(r))
}

func TestRect_Intersects_TouchingEdgeCounts(t *testing.T) {
	r := mustRect(0, 0, 1, 1)
	s := mustRect(1, 0, 2, 1)
	assert.True(t, r.Intersects(s))
}

func TestRect_Intersects_Disjoint(t *testing.T) {
	r := mustRect(0, 0, 1, 1)
	s := mustRect(2, 2, 3, 3)
	assert.False(t, r.Intersects(s))
}

func TestRect_Intersection_NoneIffNotIntersecting(t *testing.T) {
	r := mustRect(0, 0, 1, 1)
	s := mustRect(2, 2, 3, 3)
	_, ok := r.Intersection(s)
	assert.False(t, ok)
	assert.False(t, r.Intersects(s))

	t2 := mustRect(0.5, 0.5, 1.5, 1.5)
	got, ok := r.Intersection(t2)
	require.True(t, ok)
	assert.Equal(t, mustRect(0.5, 0.5, 1, 1), got)
}
