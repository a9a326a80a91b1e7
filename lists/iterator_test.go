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


package lists_test

import (
	"bytes"

	. "gopkg.in/check.v1"

	"github.com/snapcore/fwdlist/lists"
	"github.com/snapcore/fwdlist/logger"
	"github.com/snapcore/fwdlist/testutil"
)

type iteratorSuite struct {
	testutil.BaseTest

	logbuf *bytes.Buffer
}

var _ = Suite(&iteratorSuite{})

func (s *iteratorSuite) SetUpTest(c *C) {
	s.BaseTest.SetUpTest(c)
	var restore func()
	s.logbuf, restore = logger.MockLogger()
	s.AddCleanup(restore)
}

func (s *iteratorSuite) TestTraverse(c *C) {
	l := lists.New(1, 2, 3)

	var got []int
	for it := l.Begin(); it != l.End(); it.Advance() {
		got = append(got, it.Value())
	}
	c.Check(got, DeepEquals, []int{1, 2, 3})

	got = nil
	for it := l.CBegin(); it != l.CEnd(); it.Advance() {
		got = append(got, it.Value())
	}
	c.Check(got, DeepEquals, []int{1, 2, 3})
}

func (s *iteratorSuite) TestMultiPass(c *C) {
	l := lists.New(1, 2, 3)
	a := l.Begin()
	b := l.Begin()

	a.Advance()
	a.Advance()
	c.Check(a.Value(), Equals, 3)
	c.Check(b.Value(), Equals, 1)

	b.Advance()
	c.Check(b.Value(), Equals, 2)
	c.Check(a.Value(), Equals, 3)
}

func (s *iteratorSuite) TestAdvance(c *C) {
	l := lists.New(1, 2)
	it := l.Begin()

	next := it.Advance()
	c.Check(next == it, Equals, true)
	c.Check(it.Value(), Equals, 2)

	c.Check(it.Advance() == l.End(), Equals, true)
	c.Check(it == l.End(), Equals, true)
}

func (s *iteratorSuite) TestPostAdvance(c *C) {
	l := lists.New(1, 2, 3)
	it := l.Begin()

	old := it.PostAdvance()
	c.Check(old.Value(), Equals, 1)
	c.Check(it.Value(), Equals, 2)

	old = it.PostAdvance()
	c.Check(old.Value(), Equals, 2)
	c.Check(it.Value(), Equals, 3)

	cit := l.CBegin()
	cold := cit.PostAdvance()
	c.Check(cold.Value(), Equals, 1)
	c.Check(cit.Value(), Equals, 2)

	bb := l.BeforeBegin()
	old = bb.PostAdvance()
	c.Check(old == l.BeforeBegin(), Equals, true)
	c.Check(bb == l.Begin(), Equals, true)
}

func (s *iteratorSuite) TestPostAdvanceLastElementPanics(c *C) {
	l := lists.New(1)
	it := l.Begin()
	c.Check(func() { it.PostAdvance() }, PanicMatches, `lists: cannot advance past last element`)
	c.Check(s.logbuf.String(), testutil.Contains, "PANIC lists: cannot advance past last element")
	// the iterator did not move
	c.Check(it == l.Begin(), Equals, true)
	c.Check(it.Value(), Equals, 1)

	cit := l.CBegin()
	c.Check(func() { cit.PostAdvance() }, PanicMatches, `lists: cannot advance past last element`)
	c.Check(cit == l.CBegin(), Equals, true)

	// pre-increment may still step to the end
	c.Check(it.Advance() == l.End(), Equals, true)

	var empty lists.List[int]
	bb := empty.BeforeBegin()
	c.Check(func() { bb.PostAdvance() }, PanicMatches, `lists: cannot advance past last element`)
}

func (s *iteratorSuite) TestNext(c *C) {
	l := lists.New(1, 2)
	it := l.Begin()
	c.Check(it.Next().Value(), Equals, 2)
	c.Check(it.Value(), Equals, 1)

	cit := l.CBegin()
	c.Check(cit.Next().Value(), Equals, 2)
	c.Check(cit.Next().Next() == l.CEnd(), Equals, true)
	c.Check(cit.Value(), Equals, 1)
}

func (s *iteratorSuite) TestBeforeBegin(c *C) {
	l := lists.New(1)
	it := l.BeforeBegin()
	c.Check(lists.IsBeforeBegin[int](it), Equals, true)
	c.Check(it.Valid(), Equals, false)

	c.Check(it.Next() == l.Begin(), Equals, true)
	it.Advance()
	c.Check(lists.IsBeforeBegin[int](it), Equals, false)
	c.Check(it == l.Begin(), Equals, true)
	c.Check(it.Valid(), Equals, true)

	var empty lists.List[int]
	c.Check(empty.BeforeBegin().Next() == empty.End(), Equals, true)
	c.Check(lists.IsBeforeBegin[int](empty.CBeforeBegin()), Equals, true)
}

func (s *iteratorSuite) TestValid(c *C) {
	l := lists.New(1)
	c.Check(l.Begin().Valid(), Equals, true)
	c.Check(l.CBegin().Valid(), Equals, true)
	c.Check(l.End().Valid(), Equals, false)
	c.Check(l.CBeforeBegin().Valid(), Equals, false)
	c.Check(lists.Iterator[int]{}.Valid(), Equals, false)
}

func (s *iteratorSuite) TestSetAndPtr(c *C) {
	l := lists.New(1, 2, 3)
	it := l.Begin().Next()
	it.Set(20)
	c.Check(l, testutil.ListEquals, []int{1, 20, 3})

	p := l.Begin().Ptr()
	*p = 10
	c.Check(l, testutil.ListEquals, []int{10, 20, 3})
	c.Check(l.CBegin().Value(), Equals, 10)
}

func (s *iteratorSuite) TestPtrStructElement(c *C) {
	type point struct{ x, y int }
	l := lists.New(point{1, 2})
	l.Begin().Ptr().y = 5
	c.Check(l.CBegin().Value(), Equals, point{1, 5})
}

func (s *iteratorSuite) TestCrossFlavorEquality(c *C) {
	l := lists.New(1, 2)

	c.Check(l.Begin().Equal(l.CBegin()), Equals, true)
	c.Check(l.CBegin().Equal(l.Begin()), Equals, true)
	c.Check(l.BeforeBegin().Equal(l.CBeforeBegin()), Equals, true)
	c.Check(l.End().Equal(l.CEnd()), Equals, true)
	c.Check(l.CEnd().Equal(l.End()), Equals, true)

	c.Check(l.Begin().Equal(l.CBegin().Next()), Equals, false)
	c.Check(l.CBeforeBegin().Equal(l.Begin()), Equals, false)
	c.Check(l.Begin().Const() == l.CBegin(), Equals, true)

	// the zero value of either flavor is the end position
	c.Check(lists.Iterator[int]{} == l.End(), Equals, true)
	c.Check(lists.ConstIterator[int]{} == l.CEnd(), Equals, true)
	c.Check(lists.Iterator[int]{}.Equal(lists.ConstIterator[int]{}), Equals, true)
}

func (s *iteratorSuite) TestEqualAcrossLists(c *C) {
	a := lists.New(1)
	b := lists.New(1)
	c.Check(a.Begin().Equal(b.Begin()), Equals, false)
	c.Check(a.BeforeBegin().Equal(b.BeforeBegin()), Equals, false)
	// all end positions are the same
	c.Check(a.End().Equal(b.CEnd()), Equals, true)
}

func (s *iteratorSuite) TestDereferenceEndPanics(c *C) {
	l := lists.New(1)
	c.Check(func() { l.End().Value() }, PanicMatches, `lists: cannot dereference end iterator`)
	c.Check(func() { l.End().Ptr() }, PanicMatches, `lists: cannot dereference end iterator`)
	c.Check(func() { l.CEnd().Value() }, PanicMatches, `lists: cannot dereference end iterator`)
	c.Check(func() { l.End().Set(2) }, PanicMatches, `lists: cannot assign through end iterator`)
	c.Check(s.logbuf.String(), testutil.Contains, "PANIC lists: cannot dereference end iterator")
}

func (s *iteratorSuite) TestDereferenceBeforeBeginPanics(c *C) {
	l := lists.New(1)
	c.Check(func() { l.BeforeBegin().Value() }, PanicMatches, `lists: cannot dereference before-begin iterator`)
	c.Check(func() { l.CBeforeBegin().Value() }, PanicMatches, `lists: cannot dereference before-begin iterator`)
	c.Check(func() { l.BeforeBegin().Set(2) }, PanicMatches, `lists: cannot assign through before-begin iterator`)
	c.Check(l, testutil.ListEquals, []int{1})
}

func (s *iteratorSuite) TestAdvanceEndPanics(c *C) {
	l := lists.New(1)
	it := l.End()
	c.Check(func() { it.Advance() }, PanicMatches, `lists: cannot advance end iterator`)
	c.Check(func() { it.PostAdvance() }, PanicMatches, `lists: cannot advance end iterator`)
	c.Check(func() { it.Next() }, PanicMatches, `lists: cannot advance end iterator`)

	cit := l.CBegin()
	cit.Advance()
	c.Check(func() { cit.Advance() }, PanicMatches, `lists: cannot advance end iterator`)
	c.Check(s.logbuf.String(), testutil.Contains, "PANIC lists: cannot advance end iterator")
}
