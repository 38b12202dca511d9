package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fjl/nixiecalc/internal/tape"
	"github.com/fjl/nixiecalc/nixie"
)

func TestCalcInput(t *testing.T) {
	var c calculator
	// input integer
	c.digit("1")
	c.digit("2")
	c.digit("3")
	check(t, &c, "123")
	// redo last digit
	c.rubout()
	c.digit("4")
	check(t, &c, "124")
	// decimal point
	c.digit(".")
	check(t, &c, "124.")
	c.digit("6")
	c.digit("7")
	check(t, &c, "124.67")
	// rubout decimals
	c.rubout()
	check(t, &c, "124.6")
	c.rubout()
	check(t, &c, "124.")
	c.rubout()
	check(t, &c, "124")
	if c.engine.Display() != 124 {
		t.Fatalf("engine display %v, want 124", c.engine.Display())
	}
}

func TestCalcBadInput(t *testing.T) {
	var c calculator
	c.digit("1")
	c.digit("2")
	c.digit("3")
	check(t, &c, "123")
	c.digit("a")
	check(t, &c, "123")
	c.digit(".")
	check(t, &c, "123.")
	c.digit("2")
	check(t, &c, "123.2")
	c.digit(".")
	check(t, &c, "123.2")
}

func TestCalcLeadingZeros(t *testing.T) {
	var c calculator
	c.digit("0")
	c.digit("0")
	check(t, &c, "0")
	c.digit("7")
	check(t, &c, "7")
	c.press(nixie.OpAllClear)
	c.digit(".")
	c.digit("5")
	check(t, &c, "0.5")
}

func TestCalcRuboutAll(t *testing.T) {
	var c calculator
	c.digit("5")
	c.rubout()
	check(t, &c, "0")
	c.rubout()
	check(t, &c, "0")
}

func TestCalcDigitLimit(t *testing.T) {
	var c calculator
	for i := 0; i < 20; i++ {
		c.digit("9")
	}
	check(t, &c, "99999999999999")
	c.press(nixie.OpAdd)
	c.digit("1")
	c.press(nixie.OpEquals)
	check(t, &c, "overflow")
}

func TestCalcParse(t *testing.T) {
	var c calculator
	c.parse("134.2")
	check(t, &c, "134.2")
	c.press(nixie.OpDivide)
	check(t, &c, "134.2")
	c.digit("2")
	check(t, &c, "2")
	c.press(nixie.OpEquals)
	check(t, &c, "67.1")
	if c.parse("abc") {
		t.Fatal("parse accepted bad input")
	}
}

func TestCalcOpTwice(t *testing.T) {
	var c calculator
	c.parse("1334")
	c.press(nixie.OpDivide)
	c.press(nixie.OpDivide)
	check(t, &c, "1334")
	c.press(nixie.OpEquals)
	check(t, &c, "1")
}

func TestCalcError(t *testing.T) {
	var c calculator
	c.digit("6")
	c.press(nixie.OpDivide)
	c.digit("0")
	c.press(nixie.OpEquals)
	check(t, &c, "divide by zero")
	c.press(nixie.OpAllClear)
	check(t, &c, "0")
}

func TestCalcAngle(t *testing.T) {
	var c calculator
	check(t, &c, "0")
	if c.indicators() != "DEG" {
		t.Fatalf("indicators %q", c.indicators())
	}
	c.toggleAngle()
	c.digit("0")
	c.press(nixie.OpCos)
	check(t, &c, "1")
	c.press(nixie.OpMemoryStore)
	c.press(nixie.OpMultiply)
	if c.indicators() != "RAD  M  ×" {
		t.Fatalf("indicators %q", c.indicators())
	}
}

func TestCalcRecord(t *testing.T) {
	var (
		c      calculator
		events []tape.Event
	)
	c.record = func(ev tape.Event) { events = append(events, ev) }
	c.digit("1")
	c.digit("2")
	c.press(nixie.OpAdd)
	c.digit("3")
	c.press(nixie.OpEquals)
	c.toggleAngle()

	want := "12 add 3 equals rad"
	if got := eventString(events); got != want {
		t.Fatalf("wrong tape\n  got: %s\n want: %s", got, want)
	}

	// Replaying the tape gives the same display.
	replay := nixie.New()
	tape.Play(replay, events, nil)
	if replay.Display() != c.engine.Display() {
		t.Fatalf("replay display %v, want %v", replay.Display(), c.engine.Display())
	}
}

func eventString(events []tape.Event) string {
	words := make([]string, len(events))
	for i, ev := range events {
		words[i] = fmt.Sprint(ev)
	}
	return strings.Join(words, " ")
}

func check(t *testing.T, c *calculator, text string) {
	t.Helper()
	if c.text() != text {
		t.Fatalf("wrong text\n  got: %q\n want: %q\nstate: %+v", c.text(), text, c.engine)
	}
}
