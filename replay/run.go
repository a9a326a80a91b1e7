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


package replay

import (
	"sort"

	"golang.org/x/xerrors"

	"github.com/snapcore/fwdlist/lists"
	"github.com/snapcore/fwdlist/logger"
	"github.com/snapcore/fwdlist/osutil"
)

// Comparison is the outcome of a compare step.
type Comparison struct {
	Step  int
	List  string
	Other string
	// Result is -1, 0 or +1 as List sorts before, equal to or after Other.
	Result int
}

// Result is the state reached by running a script.
type Result struct {
	Lists       map[string][]string
	Comparisons []Comparison
}

// Names returns the names of the lists in alphabetical order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Lists))
	for name := range r.Lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CloneValue copies a list element for assign steps.
//
// The "clone" fault injection tag makes it fail, see
// osutil.MaybeInjectFault.
func CloneValue(v string) (string, error) {
	if err := osutil.MaybeInjectFault("clone"); err != nil {
		return "", err
	}
	return v, nil
}

// Run applies the steps of the script, in order, to fresh copies of the
// declared lists. It stops at the first step that fails.
func Run(script *Script) (*Result, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}

	state := make(map[string]*lists.List[string], len(script.Lists))
	for name, values := range script.Lists {
		state[name] = lists.New(values...)
	}

	res := &Result{}
	for i := range script.Steps {
		st := &script.Steps[i]
		logger.Debugf("step %d: %s", i, st)
		cmp, err := apply(state, st)
		if err != nil {
			return nil, xerrors.Errorf("step %d (%s): %w", i, st.Op, err)
		}
		if cmp != nil {
			cmp.Step = i
			res.Comparisons = append(res.Comparisons, *cmp)
		}
	}

	res.Lists = make(map[string][]string, len(state))
	for name, l := range state {
		res.Lists[name] = l.Slice()
	}
	return res, nil
}

func apply(state map[string]*lists.List[string], st *Step) (*Comparison, error) {
	l := state[st.List]
	other := state[st.Other]

	switch st.Op {
	case OpPushFront:
		l.PushFront(*st.Value)
	case OpPopFront:
		l.PopFront()
	case OpInsertAfter:
		pos, err := resolve(l, st.List, *st.At)
		if err != nil {
			return nil, err
		}
		l.InsertAfter(pos, *st.Value)
	case OpEraseAfter:
		if l.Empty() && st.At.BeforeBegin {
			// nothing to erase, like the container does
			logger.Noticef("list %q is empty, nothing to erase", st.List)
			return nil, nil
		}
		pos, err := resolve(l, st.List, *st.At)
		if err != nil {
			return nil, err
		}
		if !pos.Next().Valid() {
			return nil, xerrors.Errorf("nothing to erase after %s in list %q: %w", st.At, st.List, ErrBadPosition)
		}
		l.EraseAfter(pos)
	case OpClear:
		l.Clear()
	case OpSwap:
		lists.Swap(l, other)
	case OpAssign:
		if err := l.AssignFunc(other, CloneValue); err != nil {
			return nil, xerrors.Errorf("cannot assign %q to %q: %w", st.Other, st.List, err)
		}
	case OpCompare:
		return &Comparison{List: st.List, Other: st.Other, Result: lists.Compare(l, other)}, nil
	default:
		return nil, xerrors.Errorf("unknown operation: %w", ErrInvalidStep)
	}
	return nil, nil
}

// resolve returns the iterator at pos in l.
func resolve(l *lists.List[string], name string, pos Position) (lists.Iterator[string], error) {
	if pos.BeforeBegin {
		return l.BeforeBegin(), nil
	}
	if pos.Index >= l.Len() {
		return lists.Iterator[string]{}, xerrors.Errorf("index %d is past the end of list %q of length %d: %w",
			pos.Index, name, l.Len(), ErrBadPosition)
	}
	it := l.Begin()
	for i := 0; i < pos.Index; i++ {
		it.Advance()
	}
	return it, nil
}
