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
	"cmp"
)

// EqualFunc returns true if both lists have the same length and eq reports
// every pair of elements, taken in order, as equal.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Equal returns true if both lists hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of [Equal].
func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// CompareFunc compares the elements of both lists lexicographically, using
// cmp on each pair of elements.
//
// The result is the result of the first non-zero comparison. If one list is a
// prefix of the other, the shorter list is the smaller one.
func CompareFunc[T, U any](a *List[T], b *List[U], cmp func(T, U) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp(x.value, y.value); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y != nil:
		return -1
	case x != nil && y == nil:
		return +1
	}
	return 0
}

// Compare compares the elements of both lists lexicographically. The result
// is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// Less returns true if a sorts before b.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual returns true if a sorts before b or is equal to it.
func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) <= 0
}

// Greater returns true if a sorts after b.
func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual returns true if a sorts after b or is equal to it.
func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) >= 0
}
