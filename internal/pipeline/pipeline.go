package pipeline

import (
	"bsort/internal/irgen"
	"bsort/internal/utils"

	"github.com/go-logr/logr"
	"github.com/llir/llvm/ir"
)

// ProcessProgram builds the module for a program that bubble sorts data,
// held as elements of the Go type elemType, and prints it.
func ProcessProgram(data []int, elemType string, log logr.Logger) (*ir.Module, error) {
	genCtx, err := irgen.NewGenContext(elemType)
	if err != nil {
		return nil, utils.MakeErrorTrace(err, "setup codegen")
	}

	if _, err := genCtx.GenerateSort(); err != nil {
		return nil, utils.MakeErrorTrace(err, "failed to generate func %s", irgen.SortFunc)
	}
	vals := make([]int64, len(data))
	for i, v := range data {
		vals[i] = int64(v)
	}
	if _, err := genCtx.GenerateMain(vals); err != nil {
		return nil, utils.MakeErrorTrace(err, "failed to generate func %s", irgen.MainFunc)
	}

	module := genCtx.Module()
	log.V(1).Info("generated module", "funcs", len(module.Funcs), "globals", len(module.Globals))
	return module, nil
}
