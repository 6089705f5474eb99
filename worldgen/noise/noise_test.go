package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval2Range(t *testing.T) {
	n := New(6, 2.0/3.0, 12345)
	for x := -4.0; x <= 4.0; x += 0.37 {
		for y := -4.0; y <= 4.0; y += 0.41 {
			v := n.Eval2(x, y)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)

			s := n.Eval2Signed(x, y)
			require.GreaterOrEqual(t, s, -1.0)
			require.LessOrEqual(t, s, 1.0)

			r := n.Eval2Ridged(x, y)
			require.GreaterOrEqual(t, r, 0.0)
			require.LessOrEqual(t, r, 1.0)
		}
	}
}

func TestEval2Deterministic(t *testing.T) {
	a := New(4, 0.5, 999)
	b := New(4, 0.5, 999)
	for x := 0.0; x < 2.0; x += 0.13 {
		assert.Equal(t, a.Eval2(x, -x), b.Eval2(x, -x))
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := New(4, 0.5, 1)
	b := New(4, 0.5, 2)
	differs := false
	for x := 0.0; x < 2.0; x += 0.13 {
		if a.Eval2(x, x) != b.Eval2(x, x) {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestPlusOneOctave(t *testing.T) {
	n := New(3, 0.5, 42)
	m := n.PlusOneOctave()
	assert.Equal(t, 4, m.Octaves)
	assert.Equal(t, 3, n.Octaves)
}
