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


// Package randutil exposes a streamlined set of functions for generating
// random values, such as the element sequences used by property tests.
package randutil

import (
	cryptorand "crypto/rand"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"sync"
)

var (
	rngLock sync.Mutex
	rng     *rand.Rand
)

func init() {
	bigSeed, err := cryptorand.Int(cryptorand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		panic(fmt.Sprintf("cannot obtain random seed: %v", err))
	}
	Seed(bigSeed.Int64())
}

// Seed resets the generator to a deterministic state.
func Seed(seed int64) {
	rngLock.Lock()
	defer rngLock.Unlock()

	rng = rand.New(rand.NewSource(seed))
}

const letters = "BCDFGHJKLMNPQRSTVWXYbcdfghjklmnpqrstvwxy0123456789"

// MakeRandomString returns a random string of length length
//
// The vowels are omitted to avoid that words are created by pure
// chance. Numbers are included.
//
// Not cryptographically safe.
func MakeRandomString(length int) string {
	rngLock.Lock()
	defer rngLock.Unlock()

	out := make([]byte, length)
	for i := range out {
		out[i] = letters[rng.Intn(len(letters))]
	}
	return string(out)
}

// Intn returns a random number in [0, n).
func Intn(n int) int {
	rngLock.Lock()
	defer rngLock.Unlock()

	return rng.Intn(n)
}

// RandomInts returns n random numbers, each in [0, max).
func RandomInts(n, max int) []int {
	rngLock.Lock()
	defer rngLock.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(max)
	}
	return out
}

// RandomStrings returns n random strings of up to maxLen characters.
func RandomStrings(n, maxLen int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = MakeRandomString(Intn(maxLen + 1))
	}
	return out
}
