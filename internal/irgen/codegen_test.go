package irgen

import (
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	. "github.com/onsi/gomega"
)

func findBlock(f *ir.Func, name string) *ir.Block {
	for _, b := range f.Blocks {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

func newMainContext(g *WithT, elemType string) *GenContext {
	ctx, err := NewGenContext(elemType)
	g.Expect(err).NotTo(HaveOccurred())
	_, err = ctx.GenerateSort()
	g.Expect(err).NotTo(HaveOccurred())
	return ctx
}

func blockNames(f *ir.Func) []string {
	var names []string
	for _, b := range f.Blocks {
		names = append(names, b.Name())
	}
	return names
}

func TestGenerateSort(t *testing.T) {
	g := NewWithT(t)
	ctx, err := NewGenContext("int")
	g.Expect(err).NotTo(HaveOccurred())

	fun, err := ctx.GenerateSort()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(fun.Name()).To(Equal("sort"))
	g.Expect(fun.Params).To(HaveLen(2))
	g.Expect(fun.Params[0].Type().Equal(types.NewPointer(types.I32))).To(BeTrue())
	g.Expect(blockNames(fun)).To(ConsistOf(
		"entry",
		"for.cond.0", "for.body.0", "for.post.0", "for.end.0",
		"for.cond.1", "for.body.1", "for.post.1", "for.end.1",
		"btrue.2", "bend.2",
	))
	for _, b := range fun.Blocks {
		g.Expect(b.Term).NotTo(BeNil(), "block %s has no terminator", b.Name())
	}

	text := ctx.Module().String()
	g.Expect(text).To(ContainSubstring("define void @sort("))
	g.Expect(text).To(ContainSubstring("icmp sgt i32"))
}

func TestGenerateSortTwice(t *testing.T) {
	g := NewWithT(t)
	ctx, err := NewGenContext("int64")
	g.Expect(err).NotTo(HaveOccurred())
	_, err = ctx.GenerateSort()
	g.Expect(err).NotTo(HaveOccurred())
	_, err = ctx.GenerateSort()
	g.Expect(err).To(MatchError("function sort already defined"))
}

func TestGenerateMain(t *testing.T) {
	g := NewWithT(t)
	ctx, err := NewGenContext("int")
	g.Expect(err).NotTo(HaveOccurred())
	_, err = ctx.GenerateSort()
	g.Expect(err).NotTo(HaveOccurred())

	fun, err := ctx.GenerateMain([]int64{9, 6, 7, 8, 3, 10, 1})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(fun.Name()).To(Equal("main"))
	g.Expect(blockNames(fun)).To(Equal([]string{
		"entry", "for.cond.0", "for.body.0", "for.post.0", "for.end.0",
	}))
	g.Expect(ctx.Consts).To(HaveKey("data"))
	g.Expect(ctx.Consts).To(HaveKey(".str.header"))

	text := ctx.Module().String()
	g.Expect(text).To(ContainSubstring("define i32 @main()"))
	g.Expect(text).To(ContainSubstring(`c"Sorted Array:\0A\00"`))
	g.Expect(text).To(ContainSubstring(`c"%i \00"`))
	g.Expect(text).To(ContainSubstring("call void @sort("))
	g.Expect(text).To(ContainSubstring("@printf("))
}

func TestGenerateMainWithoutSort(t *testing.T) {
	g := NewWithT(t)
	ctx, err := NewGenContext("int")
	g.Expect(err).NotTo(HaveOccurred())
	_, err = ctx.GenerateMain([]int64{1})
	g.Expect(err).To(MatchError(ContainSubstring("function sort not defined")))
}

func TestNewGenContextBadType(t *testing.T) {
	g := NewWithT(t)
	_, err := NewGenContext("float64")
	g.Expect(err).To(HaveOccurred())
}

func TestSortLoopBounds(t *testing.T) {
	g := NewWithT(t)
	ctx, err := NewGenContext("int")
	g.Expect(err).NotTo(HaveOccurred())
	fun, err := ctx.GenerateSort()
	g.Expect(err).NotTo(HaveOccurred())
	length := fun.Params[1]

	// outer: i < len - 1
	outer := findBlock(fun, "for.cond.0")
	g.Expect(outer).NotTo(BeNil())
	g.Expect(outer.Insts).To(HaveLen(3))
	sub, ok := outer.Insts[1].(*ir.InstSub)
	g.Expect(ok).To(BeTrue())
	g.Expect(sub.X).To(BeIdenticalTo(length))
	g.Expect(sub.Y.(*constant.Int).X.Int64()).To(Equal(int64(1)))

	// inner: j < len - i - 1, with i loaded in the outer body
	i := findBlock(fun, "for.body.0").Insts[0]
	inner := findBlock(fun, "for.cond.1")
	g.Expect(inner).NotTo(BeNil())
	g.Expect(inner.Insts).To(HaveLen(4))
	j := inner.Insts[0]
	lenMinusI, ok := inner.Insts[1].(*ir.InstSub)
	g.Expect(ok).To(BeTrue())
	g.Expect(lenMinusI.X).To(BeIdenticalTo(length))
	g.Expect(lenMinusI.Y).To(BeIdenticalTo(i))
	bound, ok := inner.Insts[2].(*ir.InstSub)
	g.Expect(ok).To(BeTrue())
	g.Expect(bound.X).To(BeIdenticalTo(lenMinusI))
	g.Expect(bound.Y.(*constant.Int).X.Int64()).To(Equal(int64(1)))
	cmp, ok := inner.Insts[3].(*ir.InstICmp)
	g.Expect(ok).To(BeTrue())
	g.Expect(cmp.Pred).To(Equal(enum.IPredSLT))
	g.Expect(cmp.X).To(BeIdenticalTo(j))
	g.Expect(cmp.Y).To(BeIdenticalTo(bound))
}

func TestGenerateMainOutOfRange(t *testing.T) {
	for _, tc := range []struct {
		elemType string
		data     []int64
		msg      string
	}{
		{"int8", []int64{300, -2, 1}, "data[0] = 300 does not fit i8"},
		{"int8", []int64{1, -129}, "data[1] = -129 does not fit i8"},
		{"int16", []int64{40000}, "data[0] = 40000 does not fit i16"},
		{"int", []int64{5000000000, 3, 1}, "data[0] = 5000000000 does not fit i32"},
	} {
		g := NewWithT(t)
		ctx := newMainContext(g, tc.elemType)
		_, err := ctx.GenerateMain(tc.data)
		g.Expect(err).To(MatchError(tc.msg))
		g.Expect(ctx.Consts).NotTo(HaveKey("data"))
	}
}

func TestGenerateMainNarrowElems(t *testing.T) {
	g := NewWithT(t)
	ctx := newMainContext(g, "int8")
	_, err := ctx.GenerateMain([]int64{127, -2, -128})
	g.Expect(err).NotTo(HaveOccurred())

	text := ctx.Module().String()
	g.Expect(text).To(ContainSubstring("[i8 127, i8 -2, i8 -128]"))
	g.Expect(text).To(ContainSubstring("sext i8"))
	g.Expect(text).To(ContainSubstring(`c"%i \00"`))
}

func TestGenerateMainWideElems(t *testing.T) {
	g := NewWithT(t)
	ctx := newMainContext(g, "int64")
	_, err := ctx.GenerateMain([]int64{5000000000, 3, 1})
	g.Expect(err).NotTo(HaveOccurred())

	text := ctx.Module().String()
	g.Expect(text).To(ContainSubstring("i64 5000000000"))
	g.Expect(text).To(ContainSubstring(`c"%lld \00"`))
	g.Expect(text).NotTo(ContainSubstring("sext"))
}

func TestGenerateMainTwice(t *testing.T) {
	g := NewWithT(t)
	ctx := newMainContext(g, "int")
	_, err := ctx.GenerateMain([]int64{2, 1})
	g.Expect(err).NotTo(HaveOccurred())
	_, err = ctx.GenerateMain([]int64{2, 1})
	g.Expect(err).To(MatchError("global data already defined"))
}
