// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numberspec parses the selection-set and boolean grammars used
// to express per-entity enablement values (see spec.md §4.3, §4.7).
package numberspec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Set is a selection of positive integers, e.g. issue or PR numbers.
type Set map[int]struct{}

// Contains reports whether n is a member of the set.
func (s Set) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

// Sorted returns the set's members in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Parse parses a number-specification string into a Set.
//
// Tokens are separated by commas and/or whitespace. Each token is either a
// positive integer or a "start-end" inclusive range with both endpoints
// positive and start <= end. Empty input, non-positive integers, and
// malformed ranges are all errors.
func Parse(s string) (Set, error) {
	tokens := splitTokens(s)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("invalid number specification %q: empty", s)
	}

	result := Set{}
	for _, tok := range tokens {
		if dash := strings.IndexByte(tok, '-'); dash > 0 && dash < len(tok)-1 {
			startStr, endStr := tok[:dash], tok[dash+1:]
			// Reject a second '-' (e.g. "1--3") by requiring the remainder parse cleanly.
			if strings.ContainsRune(endStr, '-') {
				return nil, fmt.Errorf("invalid number specification %q: malformed range %q", s, tok)
			}
			start, err := strconv.Atoi(startStr)
			if err != nil || start <= 0 {
				return nil, fmt.Errorf("invalid number specification %q: malformed range %q", s, tok)
			}
			end, err := strconv.Atoi(endStr)
			if err != nil || end <= 0 {
				return nil, fmt.Errorf("invalid number specification %q: malformed range %q", s, tok)
			}
			if start > end {
				return nil, fmt.Errorf("invalid number specification %q: range %q has start > end", s, tok)
			}
			for n := start; n <= end; n++ {
				result[n] = struct{}{}
			}
			continue
		}

		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid number specification %q: bad token %q", s, tok)
		}
		result[n] = struct{}{}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("invalid number specification %q: empty", s)
	}
	return result, nil
}

func splitTokens(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ParseBoolean parses true|false|yes|no|on|off case-insensitively.
func ParseBoolean(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
}

// Value is the parsed form of an entity's enablement value: either a
// plain boolean or a selection set of specific numbers.
type Value struct {
	IsBool  bool
	Bool    bool
	Numbers Set
}

// Disabled reports whether this value results in the entity being fully
// disabled (i.e. it is the boolean false; a selection set, even an empty
// one conceptually, never disables the entity outright).
func (v Value) Disabled() bool {
	return v.IsBool && !v.Bool
}

// ParseValue dispatches between the boolean and selection-set grammars,
// trying the boolean form first so that a literal "true"/"false" is
// never misread as a (currently impossible, but future-proofed against)
// numeric token.
func ParseValue(s string) (Value, error) {
	if b, err := ParseBoolean(s); err == nil {
		return Value{IsBool: true, Bool: b}, nil
	}
	set, err := Parse(s)
	if err != nil {
		return Value{}, fmt.Errorf("invalid enablement value %q: not a boolean or number specification", s)
	}
	return Value{Numbers: set}, nil
}
