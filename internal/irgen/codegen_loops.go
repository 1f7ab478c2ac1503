package irgen

import (
	"fmt"

	"bsort/internal/typesystem"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/value"
)

type branchManager struct {
	// unique index per function body generation
	// used in branch statements
	UID int
}

func (m *branchManager) EnterFuncDef() {
	m.UID = 0
}

func (m *branchManager) nextUID() int {
	uid := m.UID
	m.UID++
	return uid
}

// boundFunc computes the exclusive upper bound of a loop inside the
// condition block.
type boundFunc func(block *ir.Block) value.Value

// bodyFunc fills the loop body starting at block and returns the block
// control leaves the body from.
type bodyFunc func(block *ir.Block, idx value.Value) *ir.Block

// genForClaused emits `for idx := 0; idx < bound; idx++ { body }` after
// block and returns the loop's end block.
func (ctx *GenContext) genForClaused(fun *ir.Func, block *ir.Block, bound boundFunc, body bodyFunc) *ir.Block {
	stmtUID := ctx.nextUID()

	// initialization; the counter lives in the entry block so nested loops
	// reuse one stack slot
	idxRef := fun.Blocks[0].NewAlloca(typesystem.Int)
	block.NewStore(constant.NewInt(typesystem.Int, 0), idxRef)

	condBlock := fun.NewBlock(fmt.Sprintf("for.cond.%d", stmtUID))
	bbody := fun.NewBlock(fmt.Sprintf("for.body.%d", stmtUID))
	bpost := fun.NewBlock(fmt.Sprintf("for.post.%d", stmtUID))
	bend := fun.NewBlock(fmt.Sprintf("for.end.%d", stmtUID))

	// condition
	block.NewBr(condBlock)
	idx := condBlock.NewLoad(typesystem.Int, idxRef)
	cond := condBlock.NewICmp(enum.IPredSLT, idx, bound(condBlock))
	condBlock.NewCondBr(cond, bbody, bend)

	// loop body
	last := body(bbody, bbody.NewLoad(typesystem.Int, idxRef))
	if last.Term == nil {
		last.NewBr(bpost)
	}

	// post statement
	next := bpost.NewAdd(bpost.NewLoad(typesystem.Int, idxRef), constant.NewInt(typesystem.Int, 1))
	bpost.NewStore(next, idxRef)
	bpost.NewBr(condBlock)

	return bend
}

// genIf emits `if cond { then }` after block and returns the join block.
func (ctx *GenContext) genIf(fun *ir.Func, block *ir.Block, cond value.Value, then func(block *ir.Block) *ir.Block) *ir.Block {
	stmtUID := ctx.nextUID()
	btrue := fun.NewBlock(fmt.Sprintf("btrue.%d", stmtUID))
	bend := fun.NewBlock(fmt.Sprintf("bend.%d", stmtUID))
	block.NewCondBr(cond, btrue, bend)

	last := then(btrue)
	if last.Term == nil {
		last.NewBr(bend)
	}
	return bend
}
