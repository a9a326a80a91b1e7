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


package main_test

import (
	"os"
	"path/filepath"

	. "gopkg.in/check.v1"

	fwdlist "github.com/snapcore/fwdlist/cmd/fwdlist"
	"github.com/snapcore/fwdlist/osutil"
	"github.com/snapcore/fwdlist/testutil"
)

const scenarioScript = `
lists:
  a: ["1", "2", "3"]
  b: []
steps:
  - {op: push-front, list: b, value: "3"}
  - {op: push-front, list: b, value: "2"}
  - {op: push-front, list: b, value: "1"}
  - {op: compare, list: a, other: b}
  - {op: erase-after, list: b, at: before-begin}
  - {op: insert-after, list: b, at: 0, value: "9"}
  - {op: compare, list: a, other: b}
  - {op: compare, list: b, other: a}
`

func (s *fwdlistSuite) writeScript(c *C, content string) string {
	path := filepath.Join(c.MkDir(), "script.yaml")
	c.Assert(os.WriteFile(path, []byte(content), 0644), IsNil)
	return path
}

func (s *fwdlistSuite) TestReplay(c *C) {
	path := s.writeScript(c, scenarioScript)

	err := fwdlist.Run([]string{"replay", path})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, `a: [1 2 3] (len 3)
b: [2 9 3] (len 3)
step 3: a == b
step 6: a < b
step 7: b > a
`)
}

func (s *fwdlistSuite) TestReplayNoCompare(c *C) {
	path := s.writeScript(c, scenarioScript)

	err := fwdlist.Run([]string{"replay", "--no-compare", path})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "a: [1 2 3] (len 3)\nb: [2 9 3] (len 3)\n")
}

func (s *fwdlistSuite) TestReplayMissingScript(c *C) {
	err := fwdlist.Run([]string{"replay"})
	c.Check(err, ErrorMatches, `the required argument .* not provided`)
}

func (s *fwdlistSuite) TestReplayExtraArgs(c *C) {
	path := s.writeScript(c, scenarioScript)

	err := fwdlist.Run([]string{"replay", path, "extra"})
	c.Check(err, Equals, fwdlist.ErrExtraArgs)
	c.Check(s.Stdout(), Equals, "")
}

func (s *fwdlistSuite) TestReplayNoSuchFile(c *C) {
	err := fwdlist.Run([]string{"replay", filepath.Join(c.MkDir(), "missing.yaml")})
	c.Check(err, ErrorMatches, `cannot read script: open .*/missing.yaml: no such file or directory`)
	c.Check(err, testutil.ErrorIs, os.ErrNotExist)
}

func (s *fwdlistSuite) TestReplayBadStep(c *C) {
	path := s.writeScript(c, `
lists: {a: ["1"]}
steps:
  - {op: erase-after, list: a, at: 0}
`)

	err := fwdlist.Run([]string{"replay", path})
	c.Check(err, ErrorMatches, `cannot replay .*/script.yaml: step 0 \(erase-after\): nothing to erase after 0 in list "a": bad position`)
	c.Check(s.Stdout(), Equals, "")
}

func (s *fwdlistSuite) TestReplayInjectedFault(c *C) {
	os.Setenv("FWDLIST_TESTING", "1")
	os.Setenv("FWDLIST_FAULT_INJECT", "clone:error")
	s.AddCleanup(func() {
		os.Unsetenv("FWDLIST_TESTING")
		os.Unsetenv("FWDLIST_FAULT_INJECT")
	})
	s.AddCleanup(osutil.MockFaultStderr(s.stderr))

	path := s.writeScript(c, `
lists: {a: ["1"], b: ["2"]}
steps:
  - {op: assign, list: a, other: b}
`)
	err := fwdlist.Run([]string{"replay", path})
	c.Check(err, ErrorMatches, `cannot replay .*: step 0 \(assign\): cannot assign "b" to "a": cannot copy element 0: injected fault "clone"`)
	c.Check(err, testutil.ErrorIs, osutil.ErrInjectedFault)
	c.Check(s.stderr.String(), Equals, `injecting "error" fault for tag "clone"`+"\n")
}
