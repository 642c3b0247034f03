// Package slotset implements the ordered free-slot sequence of
// spec.md §4.3: a walk over a permutation's output order that supports
// forward iteration and O(1) deletion of the element currently under
// the cursor, without invalidating the walk.
//
// The C++ codec this package replaces (original_source/src/cpp/codecs.cpp)
// exposes this as a doubly linked list with a raw iterator; that
// iterator shape leaks the node's lifetime into callers. This package
// exposes the same delete-and-advance contract through a small cursor
// type instead, per the design note in spec.md §9.
package slotset

type node struct {
	value      uint16
	prev, next *node
}

// List is a doubly linked sequence of slot ids preserving the order
// they were built in.
type List struct {
	head, tail *node
	len        int
}

// New builds a List from ids, in order.
func New(ids []uint16) *List {
	l := &List{}
	for _, id := range ids {
		l.append(id)
	}
	return l
}

func (l *List) append(v uint16) {
	n := &node{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.len++
}

// Len returns the number of ids currently in the list.
func (l *List) Len() int {
	return l.len
}

// Cursor walks a List from its head, exposing the slot id currently
// under the cursor and allowing deletion of that slot in O(1).
type Cursor struct {
	list *List
	cur  *node
}

// Cursor returns a cursor positioned at the head of l.
func (l *List) Cursor() *Cursor {
	return &Cursor{list: l, cur: l.head}
}

// Done reports whether the cursor has advanced past the tail.
func (c *Cursor) Done() bool {
	return c.cur == nil
}

// Value returns the slot id currently under the cursor. Calling it
// when Done is true panics, matching dereferencing an end iterator
// being a programmer error rather than a recoverable condition.
func (c *Cursor) Value() uint16 {
	if c.cur == nil {
		panic("slotset: Value called on exhausted cursor")
	}
	return c.cur.value
}

// Next advances the cursor to the following element.
func (c *Cursor) Next() {
	if c.cur != nil {
		c.cur = c.cur.next
	}
}

// DeleteAndNext removes the element currently under the cursor from
// the list and advances the cursor to what was its successor (or to
// Done, if it was the tail). It is the cursor-equivalent of the
// original codec's Iterator::delete_current.
func (c *Cursor) DeleteAndNext() {
	n := c.cur
	if n == nil {
		return
	}
	c.cur = n.next
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.list.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.list.tail = n.prev
	}
	c.list.len--
}

// RemoveSet deletes every element of l whose value is present in
// occupied, walking the list once. This is the "delete from the free
// list any id already written" step used when composing the payload
// free-slot list from a fresh permutation (spec.md §4.6 step 6d,
// §4.7 step 5).
func RemoveSet(l *List, occupied map[uint16]struct{}) {
	c := l.Cursor()
	for !c.Done() {
		if _, ok := occupied[c.Value()]; ok {
			c.DeleteAndNext()
		} else {
			c.Next()
		}
	}
}
