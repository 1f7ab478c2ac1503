// Package irgen emits the bubble sort program as an LLVM IR module.
package irgen

import (
	"bsort/internal/typesystem"
	"bsort/internal/utils"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
)

type GenContext struct {
	module       *ir.Module
	Funcs        map[string]*ir.Func
	SpecialFuncs map[string]*ir.Func
	Consts       map[string]*ir.Global

	// element type of the sorted array
	ElemType *types.IntType

	branchManager
}

func NewGenContext(elemGoType string) (*GenContext, error) {
	elemType, err := typesystem.GoTypeToIR(elemGoType)
	if err != nil {
		return nil, err
	}
	ctx := GenContext{
		module:       ir.NewModule(),
		Funcs:        make(map[string]*ir.Func),
		SpecialFuncs: make(map[string]*ir.Func),
		Consts:       make(map[string]*ir.Global),
		ElemType:     elemType,
	}

	// external functions (printf)
	fun := ctx.module.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	fun.Sig.Variadic = true
	ctx.SpecialFuncs["printf"] = fun

	return &ctx, nil
}

func (ctx *GenContext) Module() *ir.Module {
	return ctx.module
}

func (ctx *GenContext) LookupFunc(funName string) (*ir.Func, error) {
	if f, ok := ctx.SpecialFuncs[funName]; ok {
		return f, nil
	}
	if f, ok := ctx.Funcs[funName]; ok {
		return f, nil
	}
	return nil, utils.MakeError("function %s not defined", funName)
}

func (ctx *GenContext) newFunc(name string, retType types.Type, params ...*ir.Param) (*ir.Func, error) {
	if _, err := ctx.LookupFunc(name); err == nil {
		return nil, utils.MakeError("function %s already defined", name)
	}
	fun := ctx.module.NewFunc(name, retType, params...)
	ctx.Funcs[name] = fun
	ctx.EnterFuncDef()
	return fun, nil
}
