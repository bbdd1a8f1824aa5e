// Package model defines the calculator's sections, fields, and derived result types.
package model

import (
	"math"
	"strconv"
)

// Value is a field entry that is either unset or a non-negative whole number.
// The zero Value is unset, so a freshly allocated state has nothing entered.
type Value struct {
	n   int64
	set bool
}

// Unset returns an empty Value.
func Unset() Value {
	return Value{}
}

// Of returns a set Value. Negative input is clamped to zero.
func Of(n int64) Value {
	if n < 0 {
		n = 0
	}
	return Value{n: n, set: true}
}

// Get returns the number and whether the value is set.
func (v Value) Get() (int64, bool) {
	return v.n, v.set
}

// IsSet reports whether a number was entered.
func (v Value) IsSet() bool {
	return v.set
}

// Or returns the number, or def when unset.
func (v Value) Or(def int64) int64 {
	if !v.set {
		return def
	}
	return v.n
}

// String renders the number, or "" when unset.
func (v Value) String() string {
	if !v.set {
		return ""
	}
	return strconv.FormatInt(v.n, 10)
}

// ParseValue keeps only the ASCII digits of raw and reads them as a whole number.
// Separators, decimal points and signs are dropped, so "1,250abc" is 1250 and
// "-3.5" is 35. Nothing left after stripping means unset. Digit strings past
// the int64 range saturate at math.MaxInt64.
func ParseValue(raw string) Value {
	var (
		n      int64
		digits int
	)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			continue
		}
		digits++
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			n = math.MaxInt64
			continue
		}
		n = n*10 + d
	}
	if digits == 0 {
		return Unset()
	}
	return Of(n)
}
