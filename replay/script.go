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


// Package replay runs scripted sequences of list operations.
//
// A script declares named lists of strings and the steps applied to them:
//
//	lists:
//	  a: ["1", "2", "3"]
//	  b: []
//	steps:
//	  - {op: push-front, list: a, value: "0"}
//	  - {op: insert-after, list: a, at: before-begin, value: x}
//	  - {op: erase-after, list: a, at: 0}
//	  - {op: swap, list: a, other: b}
//	  - {op: compare, list: a, other: b}
//
// Positions are either before-begin or the zero based index of an element.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownList is returned when a step refers to an undeclared list.
	ErrUnknownList = errors.New("unknown list")
	// ErrBadPosition is returned when a position does not fit the list it
	// is used with.
	ErrBadPosition = errors.New("bad position")
	// ErrInvalidStep is returned for steps with missing or unknown fields.
	ErrInvalidStep = errors.New("invalid step")
)

// Op is the name of a list operation.
type Op string

const (
	OpPushFront   Op = "push-front"
	OpPopFront    Op = "pop-front"
	OpInsertAfter Op = "insert-after"
	OpEraseAfter  Op = "erase-after"
	OpClear       Op = "clear"
	OpSwap        Op = "swap"
	OpAssign      Op = "assign"
	OpCompare     Op = "compare"
)

type opInfo struct {
	needsOther bool
	needsAt    bool
	needsValue bool
}

var ops = map[Op]opInfo{
	OpPushFront:   {needsValue: true},
	OpPopFront:    {},
	OpInsertAfter: {needsAt: true, needsValue: true},
	OpEraseAfter:  {needsAt: true},
	OpClear:       {},
	OpSwap:        {needsOther: true},
	OpAssign:      {needsOther: true},
	OpCompare:     {needsOther: true},
}

// Position is a place in a list, used by insert-after and erase-after.
type Position struct {
	// BeforeBegin is set for the position before the first element.
	BeforeBegin bool
	// Index of the element, when BeforeBegin is not set.
	Index int
}

const beforeBegin = "before-begin"

func (p Position) String() string {
	if p.BeforeBegin {
		return beforeBegin
	}
	return strconv.Itoa(p.Index)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Position) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return xerrors.Errorf("line %d: position must be a scalar", node.Line)
	}
	if node.Value == beforeBegin {
		*p = Position{BeforeBegin: true}
		return nil
	}
	idx, err := strconv.Atoi(node.Value)
	if err != nil || idx < 0 {
		return xerrors.Errorf("line %d: invalid position %q, expected %s or an index", node.Line, node.Value, beforeBegin)
	}
	*p = Position{Index: idx}
	return nil
}

// Step is a single operation of a script.
type Step struct {
	Op    Op        `yaml:"op"`
	List  string    `yaml:"list"`
	Other string    `yaml:"other,omitempty"`
	At    *Position `yaml:"at,omitempty"`
	Value *string   `yaml:"value,omitempty"`
}

func (st *Step) String() string {
	s := fmt.Sprintf("%s %s", st.Op, st.List)
	if st.Other != "" {
		s += " " + st.Other
	}
	if st.At != nil {
		s += " at " + st.At.String()
	}
	if st.Value != nil {
		s += fmt.Sprintf(" %q", *st.Value)
	}
	return s
}

// Script is a set of named lists with the steps to apply to them.
type Script struct {
	Lists map[string][]string `yaml:"lists"`
	Steps []Step              `yaml:"steps"`
}

// Parse parses and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var script Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		if err == io.EOF {
			return nil, xerrors.Errorf("cannot parse script: empty document")
		}
		return nil, xerrors.Errorf("cannot parse script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Load reads and parses the script at the given path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("cannot read script: %w", err)
	}
	return Parse(data)
}

// Validate checks that every step names a known operation, refers to
// declared lists and carries the fields its operation needs.
//
// Positions are only checked against the lists when running the script.
func (s *Script) Validate() error {
	for i := range s.Steps {
		if err := s.validateStep(&s.Steps[i]); err != nil {
			return xerrors.Errorf("step %d (%s): %w", i, s.Steps[i].Op, err)
		}
	}
	return nil
}

func (s *Script) validateStep(st *Step) error {
	info, ok := ops[st.Op]
	if !ok {
		return xerrors.Errorf("unknown operation: %w", ErrInvalidStep)
	}
	if _, ok := s.Lists[st.List]; !ok {
		return xerrors.Errorf("cannot use list %q: %w", st.List, ErrUnknownList)
	}
	switch {
	case info.needsOther && st.Other == "":
		return xerrors.Errorf("missing other list: %w", ErrInvalidStep)
	case !info.needsOther && st.Other != "":
		return xerrors.Errorf("unexpected other list: %w", ErrInvalidStep)
	case info.needsAt && st.At == nil:
		return xerrors.Errorf("missing position: %w", ErrInvalidStep)
	case !info.needsAt && st.At != nil:
		return xerrors.Errorf("unexpected position: %w", ErrInvalidStep)
	case info.needsValue && st.Value == nil:
		return xerrors.Errorf("missing value: %w", ErrInvalidStep)
	case !info.needsValue && st.Value != nil:
		return xerrors.Errorf("unexpected value: %w", ErrInvalidStep)
	}
	if info.needsOther {
		if _, ok := s.Lists[st.Other]; !ok {
			return xerrors.Errorf("cannot use list %q: %w", st.Other, ErrUnknownList)
		}
	}
	return nil
}
