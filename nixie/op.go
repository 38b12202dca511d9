package nixie

import (
	"fmt"
	"strings"
)

// Operation is a calculator function key.
type Operation uint8

const (
	OpNone Operation = iota
	OpAdd
	OpSubtract
	OpDivide
	OpMultiply
	OpSquareRoot
	OpPercent
	OpEquals
	OpMemoryClear
	OpMemoryRecall
	OpMemoryStore
	OpMemorySubtract
	OpMemoryAdd
	OpAllClear
	OpClear
	OpSignFlip
	OpReciprocal
	OpPower
	OpSin
	OpCos
	OpTan
	OpLog10
	OpLn

	numOps
)

// Family is the handler class of an operation.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyNone
	FamilyBinary
	FamilyUnary
	FamilyPercent
	FamilyMemory
	FamilyClear
	FamilyEquals
)

type opInfo struct {
	name   string
	symbol string
	family Family
}

var opTable = [numOps]opInfo{
	OpNone:           {"none", "", FamilyNone},
	OpAdd:            {"add", "+", FamilyBinary},
	OpSubtract:       {"sub", "−", FamilyBinary},
	OpDivide:         {"div", "÷", FamilyBinary},
	OpMultiply:       {"mul", "×", FamilyBinary},
	OpSquareRoot:     {"sqrt", "√", FamilyUnary},
	OpPercent:        {"percent", "%", FamilyPercent},
	OpEquals:         {"equals", "=", FamilyEquals},
	OpMemoryClear:    {"mc", "MC", FamilyMemory},
	OpMemoryRecall:   {"mr", "MR", FamilyMemory},
	OpMemoryStore:    {"ms", "MS", FamilyMemory},
	OpMemorySubtract: {"m-", "M−", FamilyMemory},
	OpMemoryAdd:      {"m+", "M+", FamilyMemory},
	OpAllClear:       {"ac", "AC", FamilyClear},
	OpClear:          {"c", "C", FamilyClear},
	OpSignFlip:       {"neg", "±", FamilyUnary},
	OpReciprocal:     {"inv", "1/x", FamilyUnary},
	OpPower:          {"pow", "xʸ", FamilyBinary},
	OpSin:            {"sin", "sin", FamilyUnary},
	OpCos:            {"cos", "cos", FamilyUnary},
	OpTan:            {"tan", "tan", FamilyUnary},
	OpLog10:          {"log", "log", FamilyUnary},
	OpLn:             {"ln", "ln", FamilyUnary},
}

// aliases are extra spellings accepted by ParseOperation.
var aliases = map[string]Operation{
	"+": OpAdd, "-": OpSubtract, "*": OpMultiply, "x": OpMultiply, "/": OpDivide,
	"^": OpPower, "+/-": OpSignFlip, "sqr": OpSquareRoot, "ce": OpClear,
	"subtract": OpSubtract, "multiply": OpMultiply, "divide": OpDivide, "power": OpPower,
	"clear": OpClear, "allclear": OpAllClear,
}

func (op Operation) valid() bool {
	return op < numOps
}

// String returns the key name of op.
func (op Operation) String() string {
	if !op.valid() {
		return fmt.Sprintf("op(%d)", uint8(op))
	}
	return opTable[op].name
}

// Symbol returns the keypad label of op.
func (op Operation) Symbol() string {
	if !op.valid() {
		return "?"
	}
	return opTable[op].symbol
}

// Family tells which handler processes op.
func (op Operation) Family() Family {
	if !op.valid() {
		return FamilyUnknown
	}
	return opTable[op].family
}

// ParseOperation resolves a key name or symbol.
func ParseOperation(s string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for op := OpNone; op < numOps; op++ {
		if opTable[op].name == key || (key != "" && strings.ToLower(opTable[op].symbol) == key) {
			return op, nil
		}
	}
	if op, ok := aliases[key]; ok {
		return op, nil
	}
	return OpNone, fmt.Errorf("unknown operation %q", s)
}

func (op Operation) MarshalText() ([]byte, error) {
	if !op.valid() {
		return nil, fmt.Errorf("invalid operation %d", uint8(op))
	}
	return []byte(op.String()), nil
}

func (op *Operation) UnmarshalText(text []byte) error {
	v, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*op = v
	return nil
}
