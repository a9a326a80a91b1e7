// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2026 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package lists implements a generic singly-linked list with forward
// iterators.
//
// Elements can be added and removed in constant time at the front of the list
// and immediately after any position. The position before the first element
// is available as [List.BeforeBegin], so that [List.InsertAfter] and
// [List.EraseAfter] treat the front of the list like any other position.
package lists

import (
	"fmt"

	"github.com/snapcore/fwdlist/logger"
)

// node is a single element of a list.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly-linked list of elements of type T.
//
// The zero value is an empty list ready to use. A List must not be copied
// after first use, as the before-begin position refers to the list itself.
// Use [List.Clone] to obtain an independent copy.
type List[T any] struct {
	// head is the sentinel, its value is never used.
	head node[T]
	size int
}

// New returns a list holding the given values, in order.
func New[T any](values ...T) *List[T] {
	return FromSeq(Values(values...))
}

// FromSeq returns a list holding the values of seq, in order.
func FromSeq[T any](seq Seq[T]) *List[T] {
	l := &List[T]{}
	// cannot fail without a clone function
	l.fill(seq, nil)
	return l
}

// FromSeqFunc returns a list holding copies of the values of seq, in order.
//
// Each value is copied with clone. If clone fails, the elements copied so far
// are dropped and the error is returned.
func FromSeqFunc[T any](seq Seq[T], clone func(T) (T, error)) (*List[T], error) {
	l := &List[T]{}
	if err := l.fill(seq, clone); err != nil {
		return nil, err
	}
	return l, nil
}

// fill replaces the content of the list with the values of seq.
//
// The new chain is built in a scratch list which is only swapped in after
// all the values were copied. On error the list is left unchanged.
func (l *List[T]) fill(seq Seq[T], clone func(T) (T, error)) error {
	var tmp List[T]
	var err error

	tail := &tmp.head
	seq(func(v T) bool {
		if clone != nil {
			if v, err = clone(v); err != nil {
				err = fmt.Errorf("cannot copy element %d: %w", tmp.size, err)
				return false
			}
		}
		tail.next = &node[T]{value: v}
		tail = tail.next
		tmp.size++
		return true
	})
	if err != nil {
		tmp.Clear()
		return err
	}

	l.Swap(&tmp)
	tmp.Clear()
	return nil
}

// Clone returns a copy of the list.
//
// Elements are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	return FromSeq(l.All())
}

// CloneFunc returns a copy of the list with each element copied by clone.
func (l *List[T]) CloneFunc(clone func(T) (T, error)) (*List[T], error) {
	return FromSeqFunc(l.All(), clone)
}

// Assign replaces the content of the list with a copy of src.
//
// Assigning a list to itself does nothing.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	l.fill(src.All(), nil)
}

// AssignFunc replaces the content of the list with a copy of src, copying
// each element with clone.
//
// If clone fails the list is left unchanged and the error is returned.
func (l *List[T]) AssignFunc(src *List[T], clone func(T) (T, error)) error {
	if l == src {
		return nil
	}
	return l.fill(src.All(), clone)
}

// Swap exchanges the elements of two lists.
//
// Iterators to elements keep referring to the same elements, now members of
// the other list. Before-begin iterators stay with their list.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the elements of two lists.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Len returns the number of elements of the list.
func (l *List[T]) Len() int {
	return l.size
}

// Empty returns true if the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first element of the list. The second value is false if
// the list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head.next == nil {
		return v, false
	}
	return l.head.next.value, true
}

// PushFront inserts v at the start of the list.
func (l *List[T]) PushFront(v T) {
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.size++
}

// PopFront removes the first element of the list.
//
// Removing from an empty list does nothing.
func (l *List[T]) PopFront() {
	n := l.head.next
	if n == nil {
		return
	}
	l.head.next = n.next
	n.next = nil
	l.size--
}

// InsertAfter inserts v right after pos and returns an iterator to it.
//
// The position must be the before-begin position or a valid position of this
// list. Inserting after the end position panics.
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	c := pos.cursorAt()
	if c.n == nil {
		logger.Panicf("lists: cannot insert after end iterator")
	}

	n := &node[T]{value: v, next: c.n.next}
	c.n.next = n
	l.size++

	return Iterator[T]{cursor[T]{n: n}}
}

// EraseAfter removes the element right after pos and returns an iterator to
// the element that followed it, possibly the end position.
//
// On an empty list nothing is removed and the end position is returned.
// Otherwise pos must be followed by an element, erasing after the last
// element or after the end position panics.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	c := pos.cursorAt()
	if c.n == nil {
		logger.Panicf("lists: cannot erase after end iterator")
	}
	if l.head.next == nil {
		return l.End()
	}

	victim := c.n.next
	if victim == nil {
		logger.Panicf("lists: cannot erase after last element")
	}
	c.n.next = victim.next
	victim.next = nil
	l.size--

	return Iterator[T]{cursor[T]{n: c.n.next}}
}

// Clear removes all the elements of the list.
func (l *List[T]) Clear() {
	for n := l.head.next; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head.next = nil
	l.size = 0
}

// BeforeBegin returns an iterator to the position before the first element.
//
// The iterator cannot be dereferenced. It is meant as the position argument
// of [List.InsertAfter] and [List.EraseAfter].
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{cursor[T]{n: &l.head, before: true}}
}

// Begin returns an iterator to the first element, or the end position if the
// list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{n: l.head.next}}
}

// End returns the position past the last element.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// CBeforeBegin is the read-only variant of [List.BeforeBegin].
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

// CBegin is the read-only variant of [List.Begin].
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd is the read-only variant of [List.End].
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// All returns a sequence over the elements of the list from first to last.
//
// Iteration advances through the chain of nodes as it was when an element was
// yielded, so removing the yielded element does not stop the iteration.
func (l *List[T]) All() Seq[T] {
	return func(yield func(T) bool) {
		var next *node[T]
		for n := l.head.next; n != nil; n = next {
			next = n.next
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice returns the elements of the list as a slice.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.size)
	l.All()(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// String returns the elements of the list formatted like a slice.
func (l *List[T]) String() string {
	return fmt.Sprint(l.Slice())
}
