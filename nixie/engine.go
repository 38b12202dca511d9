// Package nixie implements the key-by-key logic of a 14 digit electronic
// calculator: four arithmetic operators plus power, scientific unary keys,
// percent, a memory register and the clear keys.
//
// The engine consumes entered values and key presses and exposes a display
// register and a status. It does no formatting, rendering or I/O. An Engine
// is not safe for concurrent use.
package nixie

// slot is the register that unary and percent keys act on.
type slot uint8

const (
	// slotResult is the left operand, mirrored on the display.
	slotResult slot = iota
	// slotEntry is the right operand holding fresh input.
	slotEntry
)

// Engine is a calculator session. The zero value is ready to use and starts
// in Degrees.
type Engine struct {
	display float64
	left    float64
	right   float64
	memory  float64

	status Status
	angle  AngleUnit

	numberEntered bool
	equalsLatched bool
	pending       Operation

	// lastOp and lastRight are re-applied by repeated equals.
	lastOp    Operation
	lastRight float64
}

// New creates an engine.
func New() *Engine {
	return new(Engine)
}

// Display returns the value to show. When Status is not Success the caller
// should show an error instead.
func (e *Engine) Display() float64 { return e.display }

// Status returns the outcome of the most recent evaluation.
func (e *Engine) Status() Status { return e.status }

// Memory returns the memory register.
func (e *Engine) Memory() float64 { return e.memory }

// Pending returns the binary operator waiting for its second operand.
func (e *Engine) Pending() Operation { return e.pending }

// AngleUnit returns the unit used by sin, cos and tan.
func (e *Engine) AngleUnit() AngleUnit { return e.angle }

// SetAngleUnit sets the unit used by sin, cos and tan.
func (e *Engine) SetAngleUnit(u AngleUnit) { e.angle = u }

// EnterValue feeds a number typed by the user. Values that do not fit the
// display set the status and are dropped.
func (e *Engine) EnterValue(x float64) {
	if st := CheckBound(x); st != Success {
		e.status = st
		return
	}
	// A number after equals starts a new calculation.
	e.equalsLatched = false
	e.right = x
	e.display = x
	e.numberEntered = true
}

// PressKey feeds a function key.
func (e *Engine) PressKey(op Operation) {
	switch op.Family() {
	case FamilyNone:
	case FamilyBinary:
		e.binary(op)
	case FamilyUnary:
		e.unary(op)
	case FamilyPercent:
		e.percent()
	case FamilyMemory:
		e.memoryKey(op)
	case FamilyClear:
		e.clear(op)
	case FamilyEquals:
		e.equals()
	default:
		e.status = UnknownOperation
	}
}

// eval runs the evaluator and records its status.
func (e *Engine) eval(op Operation, x, y float64) (float64, bool) {
	v, st := Eval(op, x, y, e.angle)
	e.status = st
	return v, st == Success
}

// operand returns the value that completes the pending operation.
func (e *Engine) operand() float64 {
	if e.numberEntered {
		return e.right
	}
	return e.display
}

func (e *Engine) binary(op Operation) {
	switch {
	case e.pending == OpNone:
		e.left = e.operand()
		e.display = e.left
	case e.numberEntered:
		v, ok := e.eval(e.pending, e.left, e.right)
		if !ok {
			return
		}
		e.left = v
		e.display = v
	}
	e.pending = op
	e.numberEntered = false
	e.equalsLatched = false
}

func (e *Engine) activeSlot() slot {
	if e.numberEntered {
		return slotEntry
	}
	return slotResult
}

func (e *Engine) active() float64 {
	if e.activeSlot() == slotEntry {
		return e.right
	}
	return e.left
}

// setActive writes v into the active slot and the display.
func (e *Engine) setActive(v float64) {
	if e.activeSlot() == slotEntry {
		e.right = v
	} else {
		e.left = v
	}
	e.display = v
}

func (e *Engine) unary(op Operation) {
	v, ok := e.eval(op, e.active(), 0)
	if ok {
		e.setActive(v)
	}
}

func (e *Engine) percent() {
	if e.pending == OpNone {
		v, ok := e.eval(OpDivide, e.active(), 100)
		if ok {
			e.setActive(v)
		}
		return
	}
	v, ok := e.eval(OpPercent, e.left, e.operand())
	if !ok {
		return
	}
	e.right = v
	e.display = v
	e.numberEntered = true
}

func (e *Engine) equals() {
	switch {
	case e.pending != OpNone:
		y := e.operand()
		v, ok := e.eval(e.pending, e.left, y)
		if !ok {
			return
		}
		e.lastOp, e.lastRight = e.pending, y
		e.left = v
		e.display = v
		e.pending = OpNone
		e.numberEntered = false
		e.equalsLatched = true
	case e.equalsLatched && !e.numberEntered:
		v, ok := e.eval(e.lastOp, e.display, e.lastRight)
		if !ok {
			return
		}
		e.left = v
		e.display = v
	default:
		e.status = Success
	}
}

func (e *Engine) memoryKey(op Operation) {
	switch op {
	case OpMemoryClear:
		e.memory = 0
	case OpMemoryRecall:
		e.EnterValue(e.memory)
	case OpMemoryStore:
		e.memory = e.display
	case OpMemoryAdd:
		if v, ok := e.eval(OpAdd, e.memory, e.display); ok {
			e.memory = v
		}
	case OpMemorySubtract:
		if v, ok := e.eval(OpSubtract, e.memory, e.display); ok {
			e.memory = v
		}
	}
}

func (e *Engine) clear(op Operation) {
	if op == OpAllClear {
		e.reset()
		return
	}
	// The cleared entry reads as a typed zero.
	e.right = 0
	e.display = 0
	e.numberEntered = true
}

// reset restores the power-on state, keeping memory and the angle unit.
func (e *Engine) reset() {
	*e = Engine{memory: e.memory, angle: e.angle}
}
