package ilist

// List is an ordered sequence of distinct int64 values plus a pseudoSize
// counter that starts at the initial length and drops by one on every
// removal attempt, hit or miss, rather than tracking the list's true
// length. Element order is ascending at construction and preserved under
// removals.
//
// The zero value is an empty, usable list with pseudoSize 0.
type List struct {
	items      []int64
	pseudoSize int64
}

// New builds a List containing a, a+1, ..., b inclusive, with pseudoSize
// set to b-a+1. If a>b the list is empty with pseudoSize 0; no error is
// returned.
func New(a, b int64) *List {
	n := b - a + 1
	if n < 0 {
		n = 0
	}
	items := make([]int64, 0, n)
	for v := a; v <= b; v++ {
		items = append(items, v)
	}
	return &List{items: items, pseudoSize: n}
}

// Empty returns a List with no elements and pseudoSize 0.
func Empty() *List {
	return &List{}
}

// Len returns the current number of elements actually stored.
func (l *List) Len() int64 {
	return int64(len(l.items))
}

// PseudoSize returns max(0, internal pseudo-size counter). It equals Len()
// only while every removal attempt has hit; each missed Choose or
// RemoveValue leaves it one further below Len(). Callers that need the
// true remaining count must use Len.
func (l *List) PseudoSize() int64 {
	if l.pseudoSize < 0 {
		return 0
	}
	return l.pseudoSize
}

// Choose performs a 1-based pop: if k is outside [1, Len()], it returns 0
// and still decrements pseudoSize (not below zero, per spec semantics —
// the getter floors, so an internal negative value behaves identically).
// Otherwise it removes and returns the element at position k.
func (l *List) Choose(k int64) int64 {
	l.pseudoSize--
	if k < 1 || k > l.Len() {
		return 0
	}
	idx := k - 1
	v := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return v
}

// RemoveValue unconditionally decrements pseudoSize, then deletes the
// first occurrence of v if present. Absence of v is not an error.
func (l *List) RemoveValue(v int64) {
	l.pseudoSize--
	for i, x := range l.items {
		if x == v {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Values returns a copy of the list's current contents, in order. It is a
// read-only convenience for tests and diagnostics; the generator never
// relies on it.
func (l *List) Values() []int64 {
	out := make([]int64, len(l.items))
	copy(out, l.items)
	return out
}
