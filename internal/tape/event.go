package tape

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fjl/nixiecalc/nixie"
)

// ValueEntered is a number fed to the engine.
type ValueEntered struct {
	Value float64 `json:"value"`
}

// KeyPressed is a function key.
type KeyPressed struct {
	Key nixie.Operation `json:"key"`
}

// AngleSet switches the angle unit.
type AngleSet struct {
	Unit nixie.AngleUnit `json:"unit"`
}

// Event is one entry on the tape.
type Event interface {
	evType() string
	// Apply feeds the event to e.
	Apply(e *nixie.Engine)
}

func (*ValueEntered) evType() string { return "value" }
func (*KeyPressed) evType() string   { return "key" }
func (*AngleSet) evType() string     { return "angle" }

func (ev *ValueEntered) Apply(e *nixie.Engine) { e.EnterValue(ev.Value) }
func (ev *KeyPressed) Apply(e *nixie.Engine)   { e.PressKey(ev.Key) }
func (ev *AngleSet) Apply(e *nixie.Engine)     { e.SetAngleUnit(ev.Unit) }

func (ev *ValueEntered) String() string { return strconv.FormatFloat(ev.Value, 'g', -1, 64) }
func (ev *KeyPressed) String() string   { return ev.Key.String() }
func (ev *AngleSet) String() string     { return ev.Unit.String() }

type jsonEvent struct {
	Type  string `json:"type"`
	Event Event  `json:"event"`
}

func writeEvent(enc *json.Encoder, ev Event) error {
	jsev := &jsonEvent{Type: ev.evType(), Event: ev}
	return enc.Encode(jsev)
}

func readEvent(dec *json.Decoder) (Event, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("unexpected JSON token %v, expected '{'", tok)
	}

	var (
		evtype = ""
		event  Event
	)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch keyTok.(string) {
		case "type":
			evtype, err = readEventType(dec)
			if err != nil {
				return nil, err
			}
		case "event":
			if evtype == "" {
				return nil, fmt.Errorf("key \"type\" must precede \"event\"")
			}
			event, err = makeEvent(evtype)
			if err != nil {
				return nil, err
			}
			if err := dec.Decode(event); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown key %q", keyTok)
		}
	}
	if event == nil {
		return nil, fmt.Errorf("missing key \"event\"")
	}

	// read '}'
	_, err = dec.Token()
	return event, err
}

func readEventType(dec *json.Decoder) (string, error) {
	typeTok, err := dec.Token()
	if err != nil {
		return "", err
	}
	typ, ok := typeTok.(string)
	if !ok {
		return "", fmt.Errorf("expected string for \"type\", got %v", typeTok)
	}
	return typ, nil
}

func makeEvent(evtype string) (Event, error) {
	switch evtype {
	case (&ValueEntered{}).evType():
		return new(ValueEntered), nil
	case (&KeyPressed{}).evType():
		return new(KeyPressed), nil
	case (&AngleSet{}).evType():
		return new(AngleSet), nil
	default:
		return nil, fmt.Errorf("unknown event type %q", evtype)
	}
}
