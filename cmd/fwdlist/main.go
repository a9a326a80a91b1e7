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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/fwdlist/logger"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ErrExtraArgs is returned if extra arguments to a command are found
var ErrExtraArgs = errors.New("too many arguments for command")

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"Print debug messages"`
	Quiet   bool `short:"q" long:"quiet" description:"Do not print notices"`

	CmdReplay  cmdReplay  `command:"replay" description:"Run a script of list operations"`
	CmdCompare cmdCompare `command:"compare" description:"Compare two lists" long-description:"Compare two lists of comma separated values. Put -- before lists starting with a dash, as in: compare --numeric -- -1,5 -1,2"`
	CmdRender  cmdRender  `command:"render" description:"Draw a list and a position in it"`
}

var loggerSimpleSetup = logger.SimpleSetup

func run(args []string) error {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := loggerSimpleSetup(&logger.Options{Debug: opts.Verbose, Quiet: opts.Quiet}); err != nil {
			return fmt.Errorf("cannot set up logging: %v", err)
		}
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	if _, err := p.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(Stdout, err)
			return nil
		}
		return err
	}
	return nil
}

// splitValues splits a comma separated list of values. The empty string is
// the empty list.
func splitValues(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func cmpSymbol(res int) string {
	switch {
	case res < 0:
		return "<"
	case res > 0:
		return ">"
	default:
		return "=="
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
