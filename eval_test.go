package mila

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterp() (*Interpreter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	it := New(Options{Stdout: &out, Stderr: &errOut, Stdin: strings.NewReader("")})
	return it, &out, &errOut
}

func TestArithmeticAndPrecedence(t *testing.T) {
	it, out, _ := newTestInterp()
	last := it.EvalStr(`let x = 2 + 3 * 4; println(x);`)
	assert.Equal(t, "14\n", out.String())
	assert.Equal(t, KindNull, last.Kind())
}

func TestEarlyReturnFromNestedBlockRecursion(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let f = fn(n){ if (n < 2) { return n; } return f(n-1) + f(n-2); }; println(f(10));`)
	assert.Equal(t, "55\n", out.String())
}

func TestClosureCapturesDefiningFrame(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let mk = fn(x){ return fn(y){ return x + y; }; }; let add3 = mk(3); println(add3(4));`)
	assert.Equal(t, "7\n", out.String())
}

func TestWhileLoopLetReassignsNearestFrame(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let i = 0; let s = 0; while (i < 5) { let s = s + i; let i = i + 1; } println(s);`)
	assert.Equal(t, "10\n", out.String())
}

func TestCatchSwallowsError(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let r = catch { report("boom"); }; println(r);`)
	assert.Equal(t, "null\n", out.String())
}

func TestBlockNameWrapsErrorAndTopLevelDiagnosticStopsEvaluation(t *testing.T) {
	it, out, errOut := newTestInterp()
	it.EvalStr(`block outer { report("x"); } println("after");`)
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "outer")
	assert.Contains(t, errOut.String(), "report(message): x")
	assert.Empty(t, out.String())
}

func TestStringConcatenationStringifiesNonStringOperand(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`println("a" + 1 + "b");`)
	assert.Equal(t, "a1b\n", out.String())
}

func TestIntegerDivisionAlwaysFloat(t *testing.T) {
	v := BinaryOp(NewInt(7), "/", NewInt(2))
	require.Equal(t, KindFloat, v.Kind())
	assert.InDelta(t, 3.5, v.Float(), 1e-9)
}

func TestModuloOnFloatYieldsNull(t *testing.T) {
	v := BinaryOp(NewFloat(1.5), "%", NewInt(2))
	assert.Equal(t, KindNull, v.Kind())
}

func TestBreakExitsSingleLoop(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let i = 0; while (true) { if (i == 3) { break; } println(i); let i = i + 1; }`)
	assert.Equal(t, "0\n1\n2\n", out.String())
}

func TestContinueExitsWhileRatherThanIterating(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let i = 0; while (i < 10) { let i = i + 1; if (i == 2) { continue; } println(i); }`)
	assert.Equal(t, "1\n", out.String())
}

func TestNonShortCircuitLogicalOperators(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let f = fn(){ println("called"); return true; }; let r = false && f(); println(r);`)
	assert.Equal(t, "called\nfalse\n", out.String())
}

func TestUndefinedVariableIsNull(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`println(nope);`)
	assert.Equal(t, "null\n", out.String())
}

func TestFunctionLiteralBodyHonorsStringsNotComments(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let f = fn(){ let s = "}"; println(s); }; f();`)
	assert.Equal(t, "}\n", out.String())
}

func TestIfElifElseChainSkipsUntakenBranchesTextually(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let classify = fn(n){
		if (n < 0) { println("neg"); }
		elif (n == 0) { println("zero"); }
		else { println("pos"); }
	};
	classify(-1); classify(0); classify(5);`)
	assert.Equal(t, "neg\nzero\npos\n", out.String())
}

func TestMissingArgsBindNullExtraArgsIgnored(t *testing.T) {
	it, out, _ := newTestInterp()
	it.EvalStr(`let f = fn(a, b){ println(a); println(b); }; f(1, 2, 3, 4); f(1);`)
	assert.Equal(t, "1\n2\n1\nnull\n", out.String())
}

func TestNeedsMoreBracketBalanceProbe(t *testing.T) {
	assert.True(t, NeedsMore(`let f = fn(n){ if (n < 2`))
	assert.True(t, NeedsMore(`let s = "unterminated`))
	assert.False(t, NeedsMore(`let x = 1;`))
}

func TestParserIdempotence(t *testing.T) {
	src := `let x = 2 + 3 * 4; println(x);`
	it1, out1, _ := newTestInterp()
	it1.EvalStr(src)
	it2, out2, _ := newTestInterp()
	it2.EvalStr(src)
	assert.Equal(t, out1.String(), out2.String())
}
