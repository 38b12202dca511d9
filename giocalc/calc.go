package main

import (
	"strconv"
	"strings"

	"github.com/fjl/nixiecalc/internal/display"
	"github.com/fjl/nixiecalc/internal/tape"
	"github.com/fjl/nixiecalc/nixie"
)

// calculator connects keypad input to the engine. Digits are collected in
// input and entered as a value after every keystroke, function keys go to
// the engine directly.
type calculator struct {
	engine nixie.Engine
	input  string

	// record receives every committed value and key, may be nil.
	record func(tape.Event)
}

// digit processes an input digit.
func (c *calculator) digit(in string) bool {
	if len(in) > 1 {
		panic("bad digit")
	}
	switch {
	case in[0] == '.':
		if strings.IndexByte(c.input, '.') >= 0 {
			return false
		}
		if c.input == "" {
			in = "0."
		}
		return c.parse(c.input + in)
	case in[0] >= '0' && in[0] <= '9':
		if countDigits(c.input) >= display.Digits {
			return false
		}
		if c.input == "0" {
			c.input = ""
		}
		return c.parse(c.input + in)
	default:
		return false
	}
}

// rubout undoes the last input.
func (c *calculator) rubout() {
	if len(c.input) == 0 {
		return
	}
	c.input = c.input[:len(c.input)-1]
	if c.input == "" {
		c.parse("0")
		c.input = ""
		return
	}
	c.parse(c.input)
}

// parse reads the given input and enters it.
func (c *calculator) parse(input string) bool {
	if input == "" {
		return true
	}
	num, err := strconv.ParseFloat(input, 64)
	if err != nil || nixie.CheckBound(num) != nixie.Success {
		return false
	}
	c.engine.EnterValue(num)
	c.input = input
	return true
}

// press applies a function key.
func (c *calculator) press(op nixie.Operation) {
	c.commit()
	c.engine.PressKey(op)
	c.emit(&tape.KeyPressed{Key: op})
}

// toggleAngle switches between degrees and radians.
func (c *calculator) toggleAngle() {
	unit := nixie.Radians
	if c.engine.AngleUnit() == nixie.Radians {
		unit = nixie.Degrees
	}
	c.engine.SetAngleUnit(unit)
	c.emit(&tape.AngleSet{Unit: unit})
}

// commit ends digit entry.
func (c *calculator) commit() {
	if c.input == "" {
		return
	}
	c.emit(&tape.ValueEntered{Value: c.engine.Display()})
	c.input = ""
}

func (c *calculator) emit(ev tape.Event) {
	if c.record != nil {
		c.record(ev)
	}
}

// text gives the current output of the calculator.
func (c *calculator) text() string {
	if len(c.input) > 0 {
		return c.input
	}
	return display.Engine(&c.engine, display.Digits)
}

// indicators gives the annunciator line shown above the digits.
func (c *calculator) indicators() string {
	s := strings.ToUpper(c.engine.AngleUnit().String())
	if c.engine.Memory() != 0 {
		s += "  M"
	}
	if op := c.engine.Pending(); op != nixie.OpNone {
		s += "  " + op.Symbol()
	}
	return s
}

func countDigits(s string) int {
	n := 0
	for i := range s {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
