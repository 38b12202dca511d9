// Package tape records and replays calculator input.
//
// A tape is a list of events: entered values, key presses and angle unit
// switches. Tapes are stored as a stream of JSON objects, and can also be
// written by hand as a text script:
//
//	# 1+3== shows 7
//	1 + 3 = =
//	rad 3.1415926 sin
package tape

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fjl/nixiecalc/nixie"
)

// ParseScript reads a text script. Each whitespace separated token is a
// number, an angle unit or a key name.
func ParseScript(script string) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(strings.NewReader(script))
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, tok := range strings.Fields(text) {
			ev, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			events = append(events, ev)
		}
	}
	return events, sc.Err()
}

func parseToken(tok string) (Event, error) {
	if isNumber(tok) {
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			return &ValueEntered{Value: v}, nil
		}
	}
	if unit, err := nixie.ParseAngleUnit(tok); err == nil {
		return &AngleSet{Unit: unit}, nil
	}
	op, err := nixie.ParseOperation(tok)
	if err != nil {
		return nil, err
	}
	return &KeyPressed{Key: op}, nil
}

// isNumber tells whether tok starts like a decimal number. Words such as
// "inf" are never numbers.
func isNumber(tok string) bool {
	s := tok
	if len(s) > 1 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) > 1 && s[0] == '.' {
		s = s[1:]
	}
	return s[0] >= '0' && s[0] <= '9'
}

// ReadAll reads a tape. Input starting with '{' is decoded as JSON events,
// anything else as a text script.
func ReadAll(r io.Reader) ([]Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return ParseScript(string(data))
	}

	var (
		events []Event
		dec    = json.NewDecoder(bytes.NewReader(data))
	)
	for {
		ev, err := readEvent(dec)
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, fmt.Errorf("event %d: %w", len(events), err)
		}
		events = append(events, ev)
	}
}

// WriteAll writes events as a JSON tape.
func WriteAll(w io.Writer, events []Event) error {
	enc := json.NewEncoder(w)
	for _, ev := range events {
		if err := writeEvent(enc, ev); err != nil {
			return err
		}
	}
	return nil
}

// Play applies events to e in order. If fn is not nil, it is called after
// each event.
func Play(e *nixie.Engine, events []Event, fn func(Event)) {
	for _, ev := range events {
		ev.Apply(e)
		if fn != nil {
			fn(ev)
		}
	}
}
