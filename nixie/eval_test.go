package nixie_test

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/fjl/nixiecalc/nixie"
)

func TestCheckBound(t *testing.T) {
	g := NewWithT(t)

	g.Expect(nixie.CheckBound(0)).To(Equal(nixie.Success))
	g.Expect(nixie.CheckBound(nixie.MaxValue)).To(Equal(nixie.Success))
	g.Expect(nixie.CheckBound(-nixie.MaxValue)).To(Equal(nixie.Success))
	g.Expect(nixie.CheckBound(1e14)).To(Equal(nixie.Overflow))
	g.Expect(nixie.CheckBound(-1e14)).To(Equal(nixie.Overflow))
	g.Expect(nixie.CheckBound(math.Inf(1))).To(Equal(nixie.Overflow))
	g.Expect(nixie.CheckBound(math.Inf(-1))).To(Equal(nixie.Overflow))
	g.Expect(nixie.CheckBound(math.NaN())).To(Equal(nixie.DomainError))
}

func TestEval(t *testing.T) {
	tests := []struct {
		op     nixie.Operation
		x, y   float64
		unit   nixie.AngleUnit
		want   float64
		status nixie.Status
	}{
		{nixie.OpAdd, 1, 2, nixie.Degrees, 3, nixie.Success},
		{nixie.OpSubtract, 1, 2, nixie.Degrees, -1, nixie.Success},
		{nixie.OpMultiply, 3, 2, nixie.Degrees, 6, nixie.Success},
		{nixie.OpDivide, 3, 2, nixie.Degrees, 1.5, nixie.Success},
		{nixie.OpDivide, 3, 0, nixie.Degrees, 0, nixie.DivideByZero},
		{nixie.OpPercent, 200, 15, nixie.Degrees, 30, nixie.Success},
		{nixie.OpPower, 2, 10, nixie.Degrees, 1024, nixie.Success},
		{nixie.OpPower, -8, 1.0 / 3, nixie.Degrees, 0, nixie.DomainError},
		{nixie.OpPower, 0, -1, nixie.Degrees, 0, nixie.Overflow},
		{nixie.OpPower, 10, 14, nixie.Degrees, 0, nixie.Overflow},
		{nixie.OpPower, 10, 400, nixie.Degrees, 0, nixie.Overflow},
		{nixie.OpSquareRoot, 16, 0, nixie.Degrees, 4, nixie.Success},
		{nixie.OpSquareRoot, -1, 0, nixie.Degrees, 0, nixie.DomainError},
		{nixie.OpReciprocal, 4, 0, nixie.Degrees, 0.25, nixie.Success},
		{nixie.OpReciprocal, 0, 0, nixie.Degrees, 0, nixie.DivideByZero},
		{nixie.OpSignFlip, 7, 0, nixie.Degrees, -7, nixie.Success},
		{nixie.OpSin, 90, 0, nixie.Degrees, 1, nixie.Success},
		{nixie.OpSin, math.Pi / 2, 0, nixie.Radians, 1, nixie.Success},
		{nixie.OpCos, 60, 0, nixie.Degrees, 0.5, nixie.Success},
		{nixie.OpCos, math.Pi, 0, nixie.Radians, -1, nixie.Success},
		{nixie.OpTan, 45, 0, nixie.Degrees, 1, nixie.Success},
		{nixie.OpTan, 90, 0, nixie.Degrees, 0, nixie.DomainError},
		{nixie.OpTan, -270, 0, nixie.Degrees, 0, nixie.DomainError},
		{nixie.OpTan, math.Pi / 2, 0, nixie.Radians, 0, nixie.DomainError},
		{nixie.OpTan, 360000090, 0, nixie.Degrees, 0, nixie.DomainError},
		{nixie.OpTan, 36000000000090, 0, nixie.Degrees, 0, nixie.DomainError},
		{nixie.OpTan, -36000000000270, 0, nixie.Degrees, 0, nixie.DomainError},
		{nixie.OpTan, 360000045, 0, nixie.Degrees, 1, nixie.Success},
		{nixie.OpSin, 360000180, 0, nixie.Degrees, 0, nixie.Success},
		{nixie.OpSin, 36000000000180, 0, nixie.Degrees, 0, nixie.Success},
		{nixie.OpCos, -36000000000180, 0, nixie.Degrees, -1, nixie.Success},
		{nixie.OpLog10, 1000, 0, nixie.Degrees, 3, nixie.Success},
		{nixie.OpLog10, 0, 0, nixie.Degrees, 0, nixie.DomainError},
		{nixie.OpLn, math.E, 0, nixie.Degrees, 1, nixie.Success},
		{nixie.OpLn, -3, 0, nixie.Degrees, 0, nixie.DomainError},
		{nixie.OpEquals, 1, 1, nixie.Degrees, 0, nixie.UnknownOperation},
		{nixie.OpMemoryAdd, 1, 1, nixie.Degrees, 0, nixie.UnknownOperation},
		{nixie.Operation(77), 1, 1, nixie.Degrees, 0, nixie.UnknownOperation},
	}
	for _, test := range tests {
		v, st := nixie.Eval(test.op, test.x, test.y, test.unit)
		if st != test.status {
			t.Errorf("Eval(%v, %v, %v, %v) status %v, want %v", test.op, test.x, test.y, test.unit, st, test.status)
			continue
		}
		if st == nixie.Success && math.Abs(v-test.want) > 1e-12 {
			t.Errorf("Eval(%v, %v, %v, %v) = %v, want %v", test.op, test.x, test.y, test.unit, v, test.want)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	g := NewWithT(t)

	g.Expect(nixie.Success.String()).To(Equal("success"))
	g.Expect(nixie.Overflow.String()).To(Equal("overflow"))
	g.Expect(nixie.DivideByZero.String()).To(Equal("divide by zero"))
	g.Expect(nixie.DomainError.String()).To(Equal("invalid domain"))
	g.Expect(nixie.UnknownOperation.String()).To(Equal("unknown operation"))

	g.Expect(nixie.Success.Err()).To(Succeed())
	g.Expect(nixie.DivideByZero.Err()).To(MatchError(nixie.ErrDivideByZero))
}

func TestParseOperation(t *testing.T) {
	g := NewWithT(t)

	for op := nixie.OpNone; op <= nixie.OpLn; op++ {
		parsed, err := nixie.ParseOperation(op.String())
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(parsed).To(Equal(op), "name %q", op.String())
		if op != nixie.OpNone {
			parsed, err = nixie.ParseOperation(op.Symbol())
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(parsed).To(Equal(op), "symbol %q", op.Symbol())
		}
	}

	for in, want := range map[string]nixie.Operation{
		"+": nixie.OpAdd, "-": nixie.OpSubtract, "*": nixie.OpMultiply,
		"/": nixie.OpDivide, "=": nixie.OpEquals, "%": nixie.OpPercent,
		"^": nixie.OpPower, "SQRT": nixie.OpSquareRoot, " AC ": nixie.OpAllClear,
	} {
		parsed, err := nixie.ParseOperation(in)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(parsed).To(Equal(want), "input %q", in)
	}

	_, err := nixie.ParseOperation("frobnicate")
	g.Expect(err).To(MatchError(ContainSubstring("unknown operation")))
	_, err = nixie.ParseOperation("")
	g.Expect(err).To(HaveOccurred())
}

func TestOperationFamily(t *testing.T) {
	g := NewWithT(t)

	g.Expect(nixie.OpPower.Family()).To(Equal(nixie.FamilyBinary))
	g.Expect(nixie.OpLn.Family()).To(Equal(nixie.FamilyUnary))
	g.Expect(nixie.OpPercent.Family()).To(Equal(nixie.FamilyPercent))
	g.Expect(nixie.OpMemoryRecall.Family()).To(Equal(nixie.FamilyMemory))
	g.Expect(nixie.OpClear.Family()).To(Equal(nixie.FamilyClear))
	g.Expect(nixie.OpEquals.Family()).To(Equal(nixie.FamilyEquals))
	g.Expect(nixie.Operation(23).Family()).To(Equal(nixie.FamilyUnknown))
}

func TestOperationText(t *testing.T) {
	g := NewWithT(t)

	text, err := nixie.OpMemoryAdd.MarshalText()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(text)).To(Equal("m+"))

	var op nixie.Operation
	g.Expect(op.UnmarshalText([]byte("tan"))).To(Succeed())
	g.Expect(op).To(Equal(nixie.OpTan))
	g.Expect(op.UnmarshalText([]byte("bogus"))).NotTo(Succeed())

	_, err = nixie.Operation(99).MarshalText()
	g.Expect(err).To(HaveOccurred())
}

func TestParseAngleUnit(t *testing.T) {
	g := NewWithT(t)

	u, err := nixie.ParseAngleUnit("Radians")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(u).To(Equal(nixie.Radians))
	u, err = nixie.ParseAngleUnit("deg")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(u).To(Equal(nixie.Degrees))
	_, err = nixie.ParseAngleUnit("grad")
	g.Expect(err).To(HaveOccurred())
}
