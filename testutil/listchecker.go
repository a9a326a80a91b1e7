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


package testutil

import (
	"fmt"
	"reflect"

	"gopkg.in/check.v1"
)

type listEqualsChecker struct {
	*check.CheckerInfo
}

// ListEquals is a Checker that verifies that traversing a list yields the
// expected elements, in order.
//
// The list must have a Slice method returning its elements and a Len method
// returning its size. The reported size must agree with the number of
// traversed elements.
var ListEquals check.Checker = &listEqualsChecker{
	&check.CheckerInfo{Name: "ListEquals", Params: []string{"list", "expected"}},
}

func (c *listEqualsChecker) Check(params []interface{}, names []string) (result bool, errMsg string) {
	defer func() {
		if v := recover(); v != nil {
			result = false
			errMsg = fmt.Sprint(v)
		}
	}()

	got, ok := sliceOf(params[0])
	if !ok {
		return false, fmt.Sprintf("%T does not have a Slice method", params[0])
	}
	lenM := reflect.ValueOf(params[0]).MethodByName("Len")
	if !lenM.IsValid() || lenM.Type().NumIn() != 0 || lenM.Type().NumOut() != 1 || lenM.Type().Out(0).Kind() != reflect.Int {
		return false, fmt.Sprintf("%T does not have a Len method", params[0])
	}
	expected := reflect.ValueOf(params[1])
	if expected.Kind() != reflect.Slice {
		return false, fmt.Sprintf("expected must be a slice, not %T", params[1])
	}
	if got.Type() != expected.Type() {
		return false, fmt.Sprintf("list has elements of type %s but expected has %s",
			got.Type().Elem(), expected.Type().Elem())
	}

	if n := int(lenM.Call(nil)[0].Int()); n != got.Len() {
		return false, fmt.Sprintf("list reports length %d but has %d elements", n, got.Len())
	}
	if got.Len() != expected.Len() {
		return false, ""
	}
	for i := 0; i < got.Len(); i++ {
		if !reflect.DeepEqual(got.Index(i).Interface(), expected.Index(i).Interface()) {
			return false, ""
		}
	}
	return true, ""
}
