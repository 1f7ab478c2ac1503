package typesystem

import (
	"math"

	"bsort/internal/utils"

	"github.com/llir/llvm/ir/types"
)

var (
	Bool  = types.I1
	Int8  = types.I8
	Int16 = types.I16
	Int32 = types.I32
	Int64 = types.I64
	Int   = Int32
)

func IsIntType(t types.Type) bool {
	it, ok := t.(*types.IntType)
	return ok && it != Bool
}

// IntRange returns the smallest and largest values a signed integer of
// type t holds.
func IntRange(t *types.IntType) (lo, hi int64) {
	if t.BitSize >= 64 {
		return math.MinInt64, math.MaxInt64
	}
	lo = int64(-1) << (t.BitSize - 1)
	return lo, -lo - 1
}

// GoTypeToIR maps the name of a Go signed integer type to its IR type.
func GoTypeToIR(goType string) (*types.IntType, error) {
	if goType == "" {
		return nil, utils.MakeError("empty go type")
	}
	t, ok := map[string]*types.IntType{
		"int8":  Int8,
		"int16": Int16,
		"int32": Int32,
		"int64": Int64,
		"int":   Int,
	}[goType]
	if !ok {
		return nil, utils.MakeError("invalid element type: %s", goType)
	}
	return t, nil
}
