package dispatch

import (
	"fmt"

	"github.com/cwbudde/algo-stats/internal/kernel"
	"github.com/cwbudde/algo-stats/internal/kernel/registry"
)

// Op identifies one slot of a Table.
type Op int

const (
	OpSum32 Op = iota
	OpSumSqDev32
	OpDot32
	OpSum64
	OpSumSqDev64
	OpDot64
	OpMixedSum

	numOps
)

var opNames = [numOps]string{
	OpSum32:      "Sum[float32]",
	OpSumSqDev32: "SumSqDev[float32]",
	OpDot32:      "Dot[float32]",
	OpSum64:      "Sum[float64]",
	OpSumSqDev64: "SumSqDev[float64]",
	OpDot64:      "Dot[float64]",
	OpMixedSum:   "MixedSum",
}

func (op Op) String() string {
	if op >= 0 && op < numOps {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Ops returns every slot in table order.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// Table is one immutable dispatch selection.
type Table struct {
	// Tier is the installed tier.
	Tier Tier

	F32      kernel.Kernels[float32]
	F64      kernel.Kernels[float64]
	MixedSum kernel.MixedSumFunc

	origins [numOps]Tier
}

// Origin returns the tier op was resolved from. Zero for unresolved slots.
func (t *Table) Origin(op Op) Tier {
	if op < 0 || op >= numOps {
		return 0
	}
	return t.origins[op]
}

// take copies op's slot from e into t. Reports false when e leaves it empty.
func (t *Table) take(op Op, e *registry.OpEntry) bool {
	switch op {
	case OpSum32:
		t.F32.Sum = e.F32.Sum
		return e.F32.Sum != nil
	case OpSumSqDev32:
		t.F32.SumSqDev = e.F32.SumSqDev
		return e.F32.SumSqDev != nil
	case OpDot32:
		t.F32.Dot = e.F32.Dot
		return e.F32.Dot != nil
	case OpSum64:
		t.F64.Sum = e.F64.Sum
		return e.F64.Sum != nil
	case OpSumSqDev64:
		t.F64.SumSqDev = e.F64.SumSqDev
		return e.F64.SumSqDev != nil
	case OpDot64:
		t.F64.Dot = e.F64.Dot
		return e.F64.Dot != nil
	case OpMixedSum:
		t.MixedSum = e.MixedSum
		return e.MixedSum != nil
	}
	return false
}
