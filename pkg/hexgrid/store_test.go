package hexgrid

import (
	"errors"
	"testing"

	"go-ironslay/pkg/hexmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(x, y int) hexmath.AxialCoord { return hexmath.AxialCoord{X: x, Y: y} }

// cells returns the full slot contents in index order.
func cells(s *Store[string]) []string {
	out := make([]string, s.Layout().Len())
	s.Each(func(c hexmath.AxialCoord, ref string) bool {
		i, _ := s.Layout().Index(c)
		out[i] = ref
		return true
	})
	return out
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, size := range [][2]int{{0, 8}, {8, 0}, {-1, 4}, {0, 0}} {
		s, err := New[string](size[0], size[1])
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %v", size)
	}
}

func TestNewStartsEmpty(t *testing.T) {
	s, err := New[string](5, 3)
	require.NoError(t, err)

	assert.Equal(t, 15, s.Layout().Len())
	assert.Equal(t, 0, s.Count())
	for _, c := range s.Layout().Cells() {
		_, ok := s.At(c)
		assert.False(t, ok, "cell %v", c)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	// Неквадратные размеры ловят перепутанный делитель.
	for _, size := range [][2]int{{8, 8}, {5, 3}, {3, 7}, {1, 4}, {6, 1}} {
		l, err := NewLayout(size[0], size[1])
		require.NoError(t, err)

		for y := 0; y < l.Height(); y++ {
			for x := 0; x < l.Width(); x++ {
				i, err := l.Index(at(x, y))
				require.NoError(t, err)
				c, err := l.Coord(i)
				require.NoError(t, err)
				assert.Equal(t, at(x, y), c)
			}
		}
		for i := 0; i < l.Len(); i++ {
			c, err := l.Coord(i)
			require.NoError(t, err)
			back, err := l.Index(c)
			require.NoError(t, err)
			assert.Equal(t, i, back)
		}
	}
}

func TestIndexOutOfRange(t *testing.T) {
	l, err := NewLayout(4, 2)
	require.NoError(t, err)

	_, err = l.Index(at(4, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = l.Index(at(0, -1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = l.Coord(8)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = l.Coord(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestScenarioEightByEight(t *testing.T) {
	s, err := New[string](8, 8)
	require.NoError(t, err)

	require.NoError(t, s.Set(at(3, 4), "A"))

	ref, ok := s.At(at(3, 4))
	assert.True(t, ok)
	assert.Equal(t, "A", ref)
	_, ok = s.At(at(4, 3))
	assert.False(t, ok)

	i, err := s.Layout().Index(at(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 35, i)
}

func TestSetIsIdempotent(t *testing.T) {
	once, _ := New[string](4, 4)
	twice, _ := New[string](4, 4)

	require.NoError(t, once.Set(at(1, 2), "A"))
	require.NoError(t, twice.Set(at(1, 2), "A"))
	require.NoError(t, twice.Set(at(1, 2), "A"))

	assert.Equal(t, cells(once), cells(twice))
	assert.Equal(t, 1, twice.Count())
}

func TestSetLastWriterWins(t *testing.T) {
	s, _ := New[string](4, 4)
	require.NoError(t, s.Set(at(0, 0), "A"))
	require.NoError(t, s.Set(at(0, 0), "B"))
	// Дубликаты в разных клетках store не отслеживает.
	require.NoError(t, s.Set(at(1, 0), "B"))

	ref, _ := s.At(at(0, 0))
	assert.Equal(t, "B", ref)
	assert.Equal(t, 2, s.Count())
}

func TestOutOfBoundsLeavesStoreUnchanged(t *testing.T) {
	const w, h = 6, 4
	s, _ := New[string](w, h)
	require.NoError(t, s.Set(at(w-1, h-1), "last"))
	before := cells(s)

	for _, c := range []hexmath.AxialCoord{at(w, 0), at(0, h), at(w, h), at(-1, 0)} {
		err := s.Set(c, "X")
		assert.ErrorIs(t, err, ErrOutOfBounds, "set %v", c)

		var oob *OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, c, oob.Coord)
		assert.Equal(t, w, oob.Width)

		assert.ErrorIs(t, s.Clear(c), ErrOutOfBounds, "clear %v", c)
		assert.Equal(t, before, cells(s))
	}

	_, ok := s.At(at(w, 0))
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	s, _ := New[string](3, 3)
	require.NoError(t, s.Set(at(2, 1), "A"))
	require.NoError(t, s.Clear(at(2, 1)))
	require.NoError(t, s.Clear(at(2, 1)))

	_, ok := s.At(at(2, 1))
	assert.False(t, ok)
	assert.Equal(t, 0, s.Count())
}

func TestFindAndEach(t *testing.T) {
	s, _ := New[string](4, 3)
	require.NoError(t, s.Set(at(3, 2), "C"))
	require.NoError(t, s.Set(at(1, 0), "A"))
	require.NoError(t, s.Set(at(0, 1), "B"))

	c, ok := s.Find("C")
	assert.True(t, ok)
	assert.Equal(t, at(3, 2), c)
	_, ok = s.Find("missing")
	assert.False(t, ok)

	var order []string
	s.Each(func(_ hexmath.AxialCoord, ref string) bool {
		order = append(order, ref)
		return len(order) < 2
	})
	assert.Equal(t, []string{"A", "B"}, order)
}

func TestSnapshotIsDetached(t *testing.T) {
	s, _ := New[string](3, 3)
	require.NoError(t, s.Set(at(1, 1), "A"))

	view := s.Snapshot()
	require.NoError(t, s.Clear(at(1, 1)))
	require.NoError(t, s.Set(at(0, 0), "B"))

	ref, ok := view.At(at(1, 1))
	assert.True(t, ok)
	assert.Equal(t, "A", ref)
	_, ok = view.At(at(0, 0))
	assert.False(t, ok)
	assert.Equal(t, 1, view.Count())
	assert.Equal(t, s.Layout(), view.Layout())
}

func TestReset(t *testing.T) {
	s, _ := New[string](2, 2)
	require.NoError(t, s.Set(at(0, 0), "A"))
	require.NoError(t, s.Set(at(1, 1), "B"))

	s.Reset()
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 4, s.Layout().Len())
}
