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

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/fwdlist/replay"
)

type cmdReplay struct {
	NoCompare bool `long:"no-compare" description:"Do not print the outcome of compare steps"`

	Positional struct {
		Script flags.Filename `positional-arg-name:"<script>"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdReplay) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}

	script, err := replay.Load(string(x.Positional.Script))
	if err != nil {
		return err
	}
	res, err := replay.Run(script)
	if err != nil {
		return fmt.Errorf("cannot replay %s: %w", x.Positional.Script, err)
	}

	for _, name := range res.Names() {
		values := res.Lists[name]
		fmt.Fprintf(Stdout, "%s: %v (len %d)\n", name, values, len(values))
	}
	if x.NoCompare {
		return nil
	}
	for _, cmp := range res.Comparisons {
		fmt.Fprintf(Stdout, "step %d: %s %s %s\n", cmp.Step, cmp.List, cmpSymbol(cmp.Result), cmp.Other)
	}
	return nil
}
