package nixie

import "math"

// MaxValue is the largest magnitude the 14 digit display can hold.
const MaxValue = 99999999999999

// capacity is the first magnitude that no longer fits.
const capacity = 1e14

// cosEpsilon is the cosine magnitude below which tan is treated as undefined.
const cosEpsilon = 1e-12

// CheckBound reports whether v fits the display.
// NaN is a domain error, infinities and magnitudes of 10^14 or more overflow.
func CheckBound(v float64) Status {
	switch {
	case math.IsNaN(v):
		return DomainError
	case math.IsInf(v, 0), math.Abs(v) >= capacity:
		return Overflow
	default:
		return Success
	}
}

// Eval computes op. Binary operations use x and y, unary operations use x
// only. Trigonometric operands are interpreted in unit. The result is only
// meaningful when the status is Success.
func Eval(op Operation, x, y float64, unit AngleUnit) (float64, Status) {
	v, st := apply(op, x, y, unit)
	if st != Success {
		return v, st
	}
	return v, CheckBound(v)
}

func apply(op Operation, x, y float64, unit AngleUnit) (float64, Status) {
	switch op {
	case OpAdd:
		return x + y, Success
	case OpSubtract:
		return x - y, Success
	case OpMultiply:
		return x * y, Success
	case OpDivide:
		if y == 0 {
			return 0, DivideByZero
		}
		return x / y, Success
	case OpPercent:
		return x * y / 100, Success
	case OpPower:
		// 0 to a negative power is +Inf and overflows in CheckBound.
		v := math.Pow(x, y)
		if math.IsNaN(v) {
			return v, DomainError
		}
		return v, Success

	case OpSquareRoot:
		if x < 0 {
			return 0, DomainError
		}
		return math.Sqrt(x), Success
	case OpReciprocal:
		if x == 0 {
			return 0, DivideByZero
		}
		return 1 / x, Success
	case OpSignFlip:
		return -x, Success
	case OpSin:
		return math.Sin(toRadians(x, unit)), Success
	case OpCos:
		return math.Cos(toRadians(x, unit)), Success
	case OpTan:
		rad := toRadians(x, unit)
		if math.Abs(math.Cos(rad)) < cosEpsilon {
			return 0, DomainError
		}
		return math.Tan(rad), Success
	case OpLog10:
		if x <= 0 {
			return 0, DomainError
		}
		return math.Log10(x), Success
	case OpLn:
		if x <= 0 {
			return 0, DomainError
		}
		return math.Log(x), Success
	default:
		return 0, UnknownOperation
	}
}

func toRadians(x float64, unit AngleUnit) float64 {
	if unit == Degrees {
		// Whole turns are removed first so multiples of 90 stay exact.
		return math.Mod(x, 360) * math.Pi / 180
	}
	return x
}
