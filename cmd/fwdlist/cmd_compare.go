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
	"strconv"

	"github.com/snapcore/fwdlist/lists"
)

type cmdCompare struct {
	Numeric bool `long:"numeric" description:"Compare the values as integers"`

	Positional struct {
		A string `positional-arg-name:"<a>"`
		B string `positional-arg-name:"<b>"`
	} `positional-args:"yes" required:"yes"`
}

// parseInts builds a list of the comma separated integers in s.
func parseInts(s string) (*lists.List[int], error) {
	l := &lists.List[int]{}
	tail := l.BeforeBegin()
	for _, v := range splitValues(s) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		tail = l.InsertAfter(tail, n)
	}
	return l, nil
}

func (x *cmdCompare) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	var res int
	if x.Numeric {
		a, err := parseInts(x.Positional.A)
		if err != nil {
			return fmt.Errorf("cannot parse %q: %v", x.Positional.A, err)
		}
		b, err := parseInts(x.Positional.B)
		if err != nil {
			return fmt.Errorf("cannot parse %q: %v", x.Positional.B, err)
		}
		res = lists.Compare(a, b)
	} else {
		res = lists.Compare(lists.New(splitValues(x.Positional.A)...), lists.New(splitValues(x.Positional.B)...))
	}

	fmt.Fprintln(Stdout, cmpSymbol(res))
	return nil
}
