package irgen

import (
	"bsort/internal/typesystem"
	"bsort/internal/utils"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

const (
	SortFunc = "sort"
	MainFunc = "main"

	dataGlobal = "data"

	headerFormat = "Sorted Array:\n"
	elemFormat   = "%i "
	elemFormat64 = "%lld "
)

// GenerateSort emits
//
//	void sort(T *array, int len)
//
// swapping adjacent elements for i in [0, len-1) and j in [0, len-i-1).
func (ctx *GenContext) GenerateSort() (*ir.Func, error) {
	array := ir.NewParam("array", types.NewPointer(ctx.ElemType))
	length := ir.NewParam("len", typesystem.Int)
	fun, err := ctx.newFunc(SortFunc, types.Void, array, length)
	if err != nil {
		return nil, err
	}
	one := constant.NewInt(typesystem.Int, 1)

	block := fun.NewBlock("entry")
	block = ctx.genForClaused(fun, block,
		func(b *ir.Block) value.Value {
			return b.NewSub(length, one)
		},
		func(b *ir.Block, i value.Value) *ir.Block {
			return ctx.genForClaused(fun, b,
				func(b *ir.Block) value.Value {
					return b.NewSub(b.NewSub(length, i), one)
				},
				func(b *ir.Block, j value.Value) *ir.Block {
					left := b.NewGetElementPtr(ctx.ElemType, array, j)
					right := b.NewGetElementPtr(ctx.ElemType, array, b.NewAdd(j, one))
					lv := b.NewLoad(ctx.ElemType, left)
					rv := b.NewLoad(ctx.ElemType, right)
					return ctx.genIf(fun, b, b.NewICmp(enum.IPredSGT, lv, rv), func(b *ir.Block) *ir.Block {
						b.NewStore(rv, left)
						b.NewStore(lv, right)
						return b
					})
				})
		})
	block.NewRet(nil)
	return fun, nil
}

// GenerateMain emits main: it sorts data held in a global array and prints
// the header followed by each element. GenerateSort must run first.
func (ctx *GenContext) GenerateMain(data []int64) (*ir.Func, error) {
	sortFun, err := ctx.LookupFunc(SortFunc)
	if err != nil {
		return nil, utils.MakeErrorTrace(err, "generate main")
	}
	printf, err := ctx.LookupFunc("printf")
	if err != nil {
		return nil, utils.MakeErrorTrace(err, "generate main")
	}
	if _, ok := ctx.Consts[dataGlobal]; ok {
		return nil, utils.MakeError("global %s already defined", dataGlobal)
	}
	if !typesystem.IsIntType(ctx.ElemType) {
		return nil, utils.MakeError("invalid element type: %s", ctx.ElemType)
	}

	lo, hi := typesystem.IntRange(ctx.ElemType)
	arrType := types.NewArray(uint64(len(data)), ctx.ElemType)
	elems := make([]constant.Constant, len(data))
	for i, v := range data {
		if v < lo || v > hi {
			return nil, utils.MakeError("data[%d] = %d does not fit %s", i, v, ctx.ElemType)
		}
		elems[i] = constant.NewInt(ctx.ElemType, v)
	}
	global := ctx.module.NewGlobalDef(dataGlobal, constant.NewArray(arrType, elems...))
	ctx.Consts[dataGlobal] = global

	// printf promotes narrow ints to int; 64-bit values need the ll modifier
	format := elemFormat
	if ctx.ElemType.BitSize > 32 {
		format = elemFormat64
	}
	header := ctx.stringConst(".str.header", headerFormat)
	elemFmt := ctx.stringConst(".str.elem", format)

	fun, err := ctx.newFunc(MainFunc, types.I32)
	if err != nil {
		return nil, err
	}
	zero := constant.NewInt(typesystem.Int, 0)
	arrayPtr := constant.NewGetElementPtr(arrType, global, zero, zero)
	length := constant.NewInt(typesystem.Int, int64(len(data)))

	block := fun.NewBlock("entry")
	block.NewCall(sortFun, arrayPtr, length)
	block.NewCall(printf, header)
	block = ctx.genForClaused(fun, block,
		func(*ir.Block) value.Value {
			return length
		},
		func(b *ir.Block, i value.Value) *ir.Block {
			var v value.Value = b.NewLoad(ctx.ElemType, b.NewGetElementPtr(arrType, global, zero, i))
			if ctx.ElemType.BitSize < 32 {
				v = b.NewSExt(v, types.I32)
			}
			b.NewCall(printf, elemFmt, v)
			return b
		})
	block.NewRet(constant.NewInt(types.I32, 0))
	return fun, nil
}

// stringConst adds a NUL-terminated string global and returns a pointer to
// its first byte.
func (ctx *GenContext) stringConst(name, s string) constant.Constant {
	data := constant.NewCharArrayFromString(s + "\x00")
	g := ctx.module.NewGlobalDef(name, data)
	g.Immutable = true
	ctx.Consts[name] = g
	zero := constant.NewInt(types.I64, 0)
	return constant.NewGetElementPtr(data.Typ, g, zero, zero)
}
