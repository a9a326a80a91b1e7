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


package osutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInjectedFault is returned by MaybeInjectFault for faults of the "error"
// kind.
var ErrInjectedFault = errors.New("injected fault")

var stderr io.Writer = os.Stderr

// MockFaultStderr redirects the notices printed when a fault is injected.
func MockFaultStderr(w io.Writer) (restore func()) {
	old := stderr
	stderr = w
	return func() {
		stderr = old
	}
}

// MaybeInjectFault allows to inject faults through the environment settings.
// The faults to inject are listed in a FWDLIST_FAULT_INJECT environment
// variable which has the format <tag>:<kind>[,<tag>:<kind>]. Where tag is a
// free form string that can be referenced directly in the code by placing
// MaybeInjectFault("<tag>"), while kind can be "error" or "panic". Error
// makes MaybeInjectFault return ErrInjectedFault, while panic panics. The
// faults can only be injected iff FWDLIST_TESTING is true.
func MaybeInjectFault(tag string) error {
	if !GetenvBool("FWDLIST_TESTING") {
		return nil
	}
	prefix := tag + ":"
	for _, tagKind := range GetenvList("FWDLIST_FAULT_INJECT") {
		if !strings.HasPrefix(tagKind, prefix) {
			continue
		}
		if err := injectFault(tag, tagKind[len(prefix):]); err != nil {
			return err
		}
	}
	return nil
}

func injectFault(tag, kind string) error {
	switch kind {
	case "error":
		fmt.Fprintf(stderr, "injecting %q fault for tag %q\n", kind, tag)
		return fmt.Errorf("%w %q", ErrInjectedFault, tag)
	case "panic":
		fmt.Fprintf(stderr, "injecting %q fault for tag %q\n", kind, tag)
		panic(fmt.Sprintf("fault %q", tag+":"+kind))
	default:
		fmt.Fprintf(stderr, "incorrect fault kind %q for tag %q\n", kind, tag)
		return nil
	}
}
