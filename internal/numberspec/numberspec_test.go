// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numberspec

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "1,2,3", want: []int{1, 2, 3}},
		{in: "1-3", want: []int{1, 2, 3}},
		{in: "1-3,7,9-10", want: []int{1, 2, 3, 7, 9, 10}},
		{in: "  1 , 2\t3\n4  ", want: []int{1, 2, 3, 4}},
		{in: "5", want: []int{5}},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "3-1", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1--3", wantErr: true},
		{in: "1-", wantErr: true},
		{in: "-3", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got.Sorted() == nil && len(tc.want) != 0 {
			t.Errorf("Parse(%q) = nil, want %v", tc.in, tc.want)
			continue
		}
		gotSorted := got.Sorted()
		if len(gotSorted) != len(tc.want) {
			t.Fatalf("Parse(%q) = %v, want %v", tc.in, gotSorted, tc.want)
		}
		for i, n := range tc.want {
			if gotSorted[i] != n {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, gotSorted, tc.want)
				break
			}
		}
	}
}

func TestParseBoolean(t *testing.T) {
	trueForms := []string{"true", "TRUE", "yes", "YES", "on", " On "}
	for _, s := range trueForms {
		b, err := ParseBoolean(s)
		if err != nil || !b {
			t.Errorf("ParseBoolean(%q) = %v, %v; want true, nil", s, b, err)
		}
	}
	falseForms := []string{"false", "FALSE", "no", "off"}
	for _, s := range falseForms {
		b, err := ParseBoolean(s)
		if err != nil || b {
			t.Errorf("ParseBoolean(%q) = %v, %v; want false, nil", s, b, err)
		}
	}
	if _, err := ParseBoolean("maybe"); err == nil {
		t.Errorf("ParseBoolean(%q) = nil error, want error", "maybe")
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("true")
	if err != nil || !v.IsBool || !v.Bool {
		t.Fatalf("ParseValue(true) = %+v, %v", v, err)
	}
	if v.Disabled() {
		t.Errorf("ParseValue(true).Disabled() = true, want false")
	}

	v, err = ParseValue("false")
	if err != nil || !v.IsBool || v.Bool {
		t.Fatalf("ParseValue(false) = %+v, %v", v, err)
	}
	if !v.Disabled() {
		t.Errorf("ParseValue(false).Disabled() = false, want true")
	}

	v, err = ParseValue("1,2,3")
	if err != nil || v.IsBool {
		t.Fatalf("ParseValue(1,2,3) = %+v, %v", v, err)
	}
	if v.Disabled() {
		t.Errorf("a selection-set value must never report Disabled()")
	}
	if !v.Numbers.Contains(2) {
		t.Errorf("ParseValue(1,2,3) missing 2")
	}

	if _, err := ParseValue("not-a-thing"); err == nil {
		t.Errorf("ParseValue(%q) = nil error, want error", "not-a-thing")
	}
}
