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


package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/snapcore/fwdlist/lists"
)

type cmdRender struct {
	At string `long:"at" value-name:"<position>" description:"Mark a position: before-begin, end or the index of an element"`

	Positional struct {
		Values string `positional-arg-name:"<values>"`
	} `positional-args:"yes"`
}

const (
	beforeBeginLabel = "[before-begin]"
	endLabel         = "(end)"
	linkLabel        = " -> "
)

func (x *cmdRender) position(l *lists.List[string]) (lists.Position[string], error) {
	switch x.At {
	case "":
		return nil, nil
	case "before-begin":
		return l.BeforeBegin(), nil
	case "end":
		return l.End(), nil
	}
	idx, err := strconv.Atoi(x.At)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("invalid position %q", x.At)
	}
	if idx >= l.Len() {
		return nil, fmt.Errorf("position %d is past the end of a list of length %d", idx, l.Len())
	}
	it := l.Begin()
	for i := 0; i < idx; i++ {
		it.Advance()
	}
	return it, nil
}

func (x *cmdRender) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	l := lists.New(splitValues(x.Positional.Values)...)
	target, err := x.position(l)
	if err != nil {
		return err
	}
	render(Stdout, l, target)
	return nil
}

// render draws the chain of nodes of l on a single line. When target is not
// nil a second line points at it.
func render(w io.Writer, l *lists.List[string], target lists.Position[string]) {
	var line strings.Builder
	col := 0
	caret := -1
	emit := func(label string, it lists.ConstIterator[string]) {
		if line.Len() > 0 {
			line.WriteString(linkLabel)
			col += len(linkLabel)
		}
		if target != nil && it.Equal(target) {
			caret = col
		}
		line.WriteString(label)
		col += runewidth.StringWidth(label)
	}

	it := l.CBeforeBegin()
	emit(beforeBeginLabel, it)
	for it.Advance(); it != l.CEnd(); it.Advance() {
		label := it.Value()
		if label == "" {
			label = `""`
		}
		emit(label, it)
	}
	emit(endLabel, it)

	fmt.Fprintln(w, line.String())
	if caret >= 0 {
		fmt.Fprintln(w, strings.Repeat(" ", caret)+"^")
	}
}
