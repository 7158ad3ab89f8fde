package values

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifierSharesStructurallyEqualValues(t *testing.T) {
	u := NewUnifier[string](8)
	a := NewGenericValues(stringHasher, "x", "y")
	b := NewGenericValues(stringHasher, "y", "x")

	ua := u.Unify(a)
	ub := u.Unify(b)
	require.True(t, ua.Equal(ub))
	require.Equal(t, 1, u.Size())
}

func TestUnifierKeepsDistinctValuesSeparate(t *testing.T) {
	u := NewUnifier[string](8)
	u.Unify(NewGenericValues(stringHasher, "x"))
	u.Unify(NewGenericValues(stringHasher, "y"))
	require.Equal(t, 2, u.Size())
}
