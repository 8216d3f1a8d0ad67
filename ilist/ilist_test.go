package ilist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestChooseBasics pins down a basic choose-then-shrink sequence.
func TestChooseBasics(t *testing.T) {
	l := New(1, 8)

	got := l.Choose(2)
	require.Equal(t, int64(2), got)

	want := []int64{1, 3, 4, 5, 6, 7, 8}
	require.Equal(t, want, l.Values())
	require.Equal(t, int64(7), l.PseudoSize())

	for i := 0; i < 20; i++ {
		l.Choose(1)
	}
	require.Equal(t, int64(0), l.PseudoSize(), "pseudo-size should floor at 0")
}

func TestChooseOutOfRangeStillDecrements(t *testing.T) {
	l := New(1, 3)
	require.Equal(t, int64(0), l.Choose(0))
	require.Equal(t, int64(2), l.PseudoSize())
	require.Equal(t, int64(0), l.Choose(99))
	require.Equal(t, int64(1), l.PseudoSize())

	// list untouched by the two failed choices
	require.Equal(t, []int64{1, 2, 3}, l.Values())
}

func TestRemoveValuePresentAndAbsent(t *testing.T) {
	l := New(1, 5)
	l.RemoveValue(3)
	want := []int64{1, 2, 4, 5}
	require.Equal(t, want, l.Values())
	require.Equal(t, int64(4), l.PseudoSize())

	// absent value: no structural change, but pseudoSize still decrements
	l.RemoveValue(3)
	require.Equal(t, want, l.Values())
	require.Equal(t, int64(3), l.PseudoSize())
}

func TestEmptyList(t *testing.T) {
	l := Empty()
	require.Zero(t, l.Len())
	require.Zero(t, l.PseudoSize())
	require.Equal(t, int64(0), l.Choose(1))
	require.Equal(t, int64(0), l.PseudoSize(), "pseudo-size should floor at 0")
}

// TestPseudoSizeLaw checks that after any sequence of choose/remove_value
// calls, pseudo_size = initial - total calls, floored at 0.
func TestPseudoSizeLaw(t *testing.T) {
	l := New(1, 10)
	initial := l.PseudoSize()
	calls := int64(0)

	l.Choose(3)
	calls++
	l.RemoveValue(7)
	calls++
	l.Choose(100)
	calls++
	l.RemoveValue(999)
	calls++

	want := initial - calls
	if want < 0 {
		want = 0
	}
	require.Equal(t, want, l.PseudoSize())
}
