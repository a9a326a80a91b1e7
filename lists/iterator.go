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

package lists

import (
	"github.com/snapcore/fwdlist/logger"
)

// Position is a place in a [List], held by either iterator flavor.
//
// Both [Iterator] and [ConstIterator] implement Position, so operations that
// only need a place in the list, such as [List.InsertAfter] or
// [Iterator.Equal], accept either of them.
type Position[T any] interface {
	cursorAt() cursor[T]
}

// cursor is the traversal core shared by both iterator flavors.
//
// The zero value is the end position.
type cursor[T any] struct {
	n *node[T]
	// before is set only for the sentinel position of a list.
	before bool
}

func (c cursor[T]) cursorAt() cursor[T] {
	return c
}

// Valid returns true if the position may be dereferenced.
func (c cursor[T]) Valid() bool {
	return c.n != nil && !c.before
}

// Equal returns true if both positions refer to the same node.
//
// Iterators of different flavors are equal when they refer to the same node.
// The zero value of either flavor is equal to the end position.
func (c cursor[T]) Equal(other Position[T]) bool {
	return c.n == other.cursorAt().n
}

func (c cursor[T]) deref(what string) *T {
	if c.n == nil {
		logger.Panicf("lists: cannot %s end iterator", what)
	}
	if c.before {
		logger.Panicf("lists: cannot %s before-begin iterator", what)
	}
	return &c.n.value
}

func (c *cursor[T]) advance() {
	if c.n == nil {
		logger.Panicf("lists: cannot advance end iterator")
	}
	c.n = c.n.next
	c.before = false
}

// postAdvance is like advance but also requires a successor, the position
// reached must not be the end.
func (c *cursor[T]) postAdvance() {
	if c.n != nil && c.n.next == nil {
		logger.Panicf("lists: cannot advance past last element")
	}
	c.advance()
}

// Iterator is a forward cursor over a [List] that allows modifying the
// element it refers to.
//
// The zero value is equal to the end position of any list and must not be
// dereferenced or advanced.
type Iterator[T any] struct {
	cursor[T]
}

// Value returns a copy of the element at the iterator.
func (it Iterator[T]) Value() T {
	return *it.deref("dereference")
}

// Ptr returns a pointer to the element at the iterator.
//
// The pointer remains usable for as long as the element stays in the list.
func (it Iterator[T]) Ptr() *T {
	return it.deref("dereference")
}

// Set replaces the element at the iterator.
func (it Iterator[T]) Set(v T) {
	*it.deref("assign through") = v
}

// Advance moves the iterator to the next position and returns it.
func (it *Iterator[T]) Advance() Iterator[T] {
	it.advance()
	return *it
}

// PostAdvance moves the iterator to the next position and returns the
// position it had before moving. The iterator must be followed by an
// element.
func (it *Iterator[T]) PostAdvance() Iterator[T] {
	old := *it
	it.postAdvance()
	return old
}

// Next returns the position after the iterator, leaving the iterator as is.
func (it Iterator[T]) Next() Iterator[T] {
	it.advance()
	return it
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// ConstIterator is a forward cursor over a [List] with read-only access to
// the elements.
type ConstIterator[T any] struct {
	cursor[T]
}

// Value returns a copy of the element at the iterator.
func (it ConstIterator[T]) Value() T {
	return *it.deref("dereference")
}

// Advance moves the iterator to the next position and returns it.
func (it *ConstIterator[T]) Advance() ConstIterator[T] {
	it.advance()
	return *it
}

// PostAdvance moves the iterator to the next position and returns the
// position it had before moving. The iterator must be followed by an
// element.
func (it *ConstIterator[T]) PostAdvance() ConstIterator[T] {
	old := *it
	it.postAdvance()
	return old
}

// Next returns the position after the iterator, leaving the iterator as is.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	it.advance()
	return it
}
