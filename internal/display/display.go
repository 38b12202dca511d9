// Package display renders engine values the way a fixed-width numeric tube
// display shows them.
package display

import (
	"strconv"
	"strings"

	"github.com/fjl/nixiecalc/nixie"
)

// Digits is the width of the calculator display.
const Digits = 14

// Format renders v without exponent, with as many decimals as fit into
// digits characters before the decimal point is counted, and without
// trailing zeros.
func Format(v float64, digits int) string {
	if digits <= 0 {
		digits = Digits
	}
	s := strconv.FormatFloat(v, 'f', digits, 64)
	decimals := digits - strings.IndexByte(s, '.')
	if decimals < 0 {
		decimals = 0
	}
	s = strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Text returns what the display shows for an engine result: the formatted
// value on success, the status label otherwise.
func Text(v float64, status nixie.Status, digits int) string {
	if status != nixie.Success {
		return status.String()
	}
	return Format(v, digits)
}

// Engine is shorthand for Text of the engine's current display and status.
func Engine(e *nixie.Engine, digits int) string {
	return Text(e.Display(), e.Status(), digits)
}
