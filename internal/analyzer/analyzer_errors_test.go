package analyzer

import (
	"strings"
	"testing"

	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/lexer"
	"github.com/funvibe/minijava/internal/parser"
	"github.com/funvibe/minijava/internal/symbols"
)

// analyzeSource lexes, parses and analyzes the input, failing the test
// on parser errors so analyzer tests only see well-formed programs.
func analyzeSource(t *testing.T, input string) (*ast.Program, []*diagnostics.DiagnosticError) {
	t.Helper()
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			t.Errorf("parser error: %s", e.Error())
		}
		t.Fatalf("input does not parse:\n%s", input)
	}

	table := symbols.NewTable()
	RegisterBuiltins(table)
	return program, New(table).Analyze(program)
}

// expectAnalyzerError asserts that at least one error with the given code is produced.
func expectAnalyzerError(t *testing.T, input string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	_, errs := analyzeSource(t, input)
	if len(errs) == 0 {
		t.Fatalf("expected error %s, but got none\ninput: %s", code, input)
	}
	for _, e := range errs {
		if e.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s\ninput: %s", code, strings.Join(msgs, "\n"), input)
	return nil
}

// expectExactErrors asserts the exact sequence of error codes, in
// position order.
func expectExactErrors(t *testing.T, input string, codes ...diagnostics.ErrorCode) {
	t.Helper()
	_, errs := analyzeSource(t, input)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	if len(errs) != len(codes) {
		t.Fatalf("expected %d errors %v, got %d:\n%s\ninput: %s",
			len(codes), codes, len(errs), strings.Join(msgs, "\n"), input)
	}
	for i, e := range errs {
		if e.Code != codes[i] {
			t.Fatalf("error %d: expected %s, got %s\nall:\n%s\ninput: %s",
				i, codes[i], e.Code, strings.Join(msgs, "\n"), input)
		}
	}
}

// expectNoAnalyzerErrors asserts that analysis produces no errors.
func expectNoAnalyzerErrors(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, errs := analyzeSource(t, input)
	if len(errs) > 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected no errors, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
	return program
}

// ---------------------------------------------------------------------------
// A001 - undeclared variable
// ---------------------------------------------------------------------------

func TestA001_UndeclaredVariable(t *testing.T) {
	input := `
class A {
	public void m() { x = 1; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA001)
}

func TestA001_NoCascadeFromUndeclared(t *testing.T) {
	// Both names are undeclared; the expressions consuming them stay
	// silent, so exactly two diagnostics come out.
	input := `
class A {
	public void m() { x = y + 1; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA001, diagnostics.ErrA001)
}

func TestA001_LocalInitializerSeesOuterScopeOnly(t *testing.T) {
	// The initializer is bound before the declared name enters scope.
	input := `
class A {
	public void m() { int x = x + 1; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA001)
}

func TestA001_InstanceVariableFallback(t *testing.T) {
	input := `
class A {
	int v;
	public void m() { v = 3; }
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestA001_InheritedInstanceVariable(t *testing.T) {
	input := `
class A { int v; }
class B extends A {
	public void m() { v = 3; }
}
`
	expectNoAnalyzerErrors(t, input)
}

// ---------------------------------------------------------------------------
// A002 - duplicate declarations
// ---------------------------------------------------------------------------

func TestA002_DuplicateClass(t *testing.T) {
	input := `
class A { }
class A { }
`
	expectExactErrors(t, input, diagnostics.ErrA002)
}

func TestA002_DuplicateInstanceVariable(t *testing.T) {
	input := `
class A {
	int v;
	boolean v;
}
`
	expectExactErrors(t, input, diagnostics.ErrA002)
}

func TestA002_DuplicateMethod(t *testing.T) {
	input := `
class A {
	public void m() { }
	public void m() { }
}
`
	expectExactErrors(t, input, diagnostics.ErrA002)
}

func TestA002_DuplicateParameter(t *testing.T) {
	input := `
class A {
	public void m(int a, boolean a) { }
}
`
	expectExactErrors(t, input, diagnostics.ErrA002)
}

func TestA002_DuplicateLocal(t *testing.T) {
	input := `
class A {
	public void m() {
		int x = 1;
		boolean x = true;
	}
}
`
	expectExactErrors(t, input, diagnostics.ErrA002)
}

func TestA002_ShadowingInNestedBlockAllowed(t *testing.T) {
	input := `
class A {
	public void m() {
		int x = 1;
		{
			boolean x = true;
			x = false;
		}
		x = 2;
	}
}
`
	expectNoAnalyzerErrors(t, input)
}

// ---------------------------------------------------------------------------
// A003 - incompatible types
// ---------------------------------------------------------------------------

func TestA003_LocalInitializerMismatch(t *testing.T) {
	input := `
class A {
	public void m() { int x = true; }
}
`
	e := expectAnalyzerError(t, input, diagnostics.ErrA003)
	if !strings.Contains(e.Message, "boolean") || !strings.Contains(e.Message, "int") {
		t.Errorf("message should name both types, got: %s", e.Message)
	}
}

func TestA003_ConditionMustBeBoolean(t *testing.T) {
	expectExactErrors(t, `
class A {
	public void m() { if (1) { } }
}
`, diagnostics.ErrA003)

	expectExactErrors(t, `
class A {
	public void m() { while (1) { } }
}
`, diagnostics.ErrA003)
}

func TestA003_ArithmeticOperandsMustBeInt(t *testing.T) {
	input := `
class A {
	public void m() { int x = 1 + true; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestA003_LogicalOperandsMustBeBoolean(t *testing.T) {
	input := `
class A {
	public void m() { boolean b = true && 1; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestA003_EqualityReportsOnce(t *testing.T) {
	// A failed comparison produces one diagnostic, not one per
	// direction.
	input := `
class A {
	public void m() { boolean b = 1 == true; }
}
`
	e := expectAnalyzerError(t, input, diagnostics.ErrA003)
	expectExactErrors(t, input, diagnostics.ErrA003)
	if !strings.Contains(e.Message, "comparable") {
		t.Errorf("expected a comparability message, got: %s", e.Message)
	}
}

func TestA003_EqualityBetweenRelatedClasses(t *testing.T) {
	// Only same-type comparisons satisfy both directions for classes.
	expectNoAnalyzerErrors(t, `
class A { }
class C {
	public void m() {
		A x = new A();
		A y = new A();
		boolean b = x == y;
	}
}
`)
	expectExactErrors(t, `
class A { }
class B extends A { }
class C {
	public void m() {
		A a = new A();
		B b = new B();
		boolean r = a == b;
	}
}
`, diagnostics.ErrA003)
}

func TestA003_NewArraySizeMustBeInt(t *testing.T) {
	input := `
class A {
	public void m() { int[] xs = new int[true]; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestA003_AssignSubtypeOk(t *testing.T) {
	input := `
class A { }
class B extends A {
	public void m() {
		A a = new B();
		a = new B();
	}
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestA003_AssignSupertypeRejected(t *testing.T) {
	input := `
class A { }
class B extends A {
	public void m() { B b = new A(); }
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestA003_NullAssignableToReferencesOnly(t *testing.T) {
	expectNoAnalyzerErrors(t, `
class A {
	public void m() {
		A a = null;
		int[] xs = null;
	}
}
`)
	expectExactErrors(t, `
class A {
	public void m() { int x = null; }
}
`, diagnostics.ErrA003)
}

func TestA003_ArrayAssignableToObject(t *testing.T) {
	input := `
class A {
	public void m() { Object o = new int[3]; }
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestA003_StringLiteralHasStringType(t *testing.T) {
	expectNoAnalyzerErrors(t, `
class A {
	public void m() {
		String s = "hello";
		Object o = "also an object";
	}
}
`)
	expectExactErrors(t, `
class A {
	public void m() { int x = "nope"; }
}
`, diagnostics.ErrA003)
}

func TestA003_CastReportsOnce(t *testing.T) {
	// A and B are unrelated, so the cast has no plausible direction.
	input := `
class A { }
class B { }
class C {
	public void m() {
		A a = new A();
		B b = (B) a;
	}
}
`
	e := expectAnalyzerError(t, input, diagnostics.ErrA003)
	expectExactErrors(t, input, diagnostics.ErrA003)
	if !strings.Contains(e.Message, "cast") {
		t.Errorf("expected a cast message, got: %s", e.Message)
	}
}

func TestA003_DowncastAllowed(t *testing.T) {
	input := `
class A { }
class B extends A {
	public void m() {
		A a = new B();
		B b = (B) a;
	}
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestA003_InstanceOfImpossible(t *testing.T) {
	input := `
class A { }
class B { }
class C {
	public void m() {
		A a = new A();
		boolean r = a instanceof B;
	}
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestA003_InstanceOfPlausible(t *testing.T) {
	input := `
class A { }
class B extends A {
	public void m() {
		A a = new B();
		boolean down = a instanceof B;
		boolean up = a instanceof A;
	}
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestA003_ReturnValueFromVoid(t *testing.T) {
	input := `
class A {
	public void m() { return 1; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestA003_MissingReturnValue(t *testing.T) {
	input := `
class A {
	public int m() { return; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestA003_ReturnSubtypeOk(t *testing.T) {
	input := `
class A { }
class B extends A { }
class C {
	public A make() { return new B(); }
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestA003_SwitchScrutineeMustBeInt(t *testing.T) {
	input := `
class A {
	public void m() {
		switch (true) {
		case 1:
			break;
		}
	}
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestA003_CaseLabelMustBeInt(t *testing.T) {
	input := `
class A {
	public void m() {
		int n = 0;
		switch (n) {
		case true:
			break;
		default:
			n = 1;
		}
	}
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestA003_ArrayLookupYieldsElementType(t *testing.T) {
	expectNoAnalyzerErrors(t, `
class A {
	public void m() {
		int[] xs = new int[3];
		int x = xs[0];
	}
}
`)
	expectExactErrors(t, `
class A {
	public void m() {
		int[] xs = new int[3];
		boolean b = xs[0];
	}
}
`, diagnostics.ErrA003)
}

func TestA003_ArrayIndexMustBeInt(t *testing.T) {
	input := `
class A {
	public void m() {
		int[] xs = new int[3];
		int x = xs[true];
	}
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

// ---------------------------------------------------------------------------
// A004 / A005 - undefined members
// ---------------------------------------------------------------------------

func TestA004_UndefinedInstanceVariable(t *testing.T) {
	input := `
class A {
	public void m() { int x = this.missing; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA004)
}

func TestA004_MemberAccessUsesReceiverType(t *testing.T) {
	// The member is looked up on the receiver's class, not the class
	// the access appears in.
	input := `
class A { int v; }
class B {
	public void m() {
		A a = new A();
		int x = a.v;
	}
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestA004_InheritedMemberThroughReceiver(t *testing.T) {
	input := `
class A { int v; }
class B extends A { }
class C {
	public void m() {
		B b = new B();
		int x = b.v;
	}
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestA005_UndefinedMethod(t *testing.T) {
	input := `
class A {
	public void m() { this.nope(); }
}
`
	expectExactErrors(t, input, diagnostics.ErrA005)
}

func TestA005_InheritedMethodCall(t *testing.T) {
	input := `
class A {
	public int f() { return 1; }
}
class B extends A {
	public int g() { return super.f(); }
}
`
	expectNoAnalyzerErrors(t, input)
}

// ---------------------------------------------------------------------------
// A006 - call arity
// ---------------------------------------------------------------------------

func TestA006_WrongNumberOfArguments(t *testing.T) {
	input := `
class A {
	public int f(int a, int b) { return a; }
	public void m() { int x = this.f(1); }
}
`
	expectExactErrors(t, input, diagnostics.ErrA006)
}

func TestA006_ArityErrorSuppressesArgumentChecks(t *testing.T) {
	// With the arity wrong, the (also wrong) argument types are not
	// reported.
	input := `
class A {
	public int f(int a, int b) { return a; }
	public void m() { int x = this.f(true); }
}
`
	expectExactErrors(t, input, diagnostics.ErrA006)
}

func TestA003_ArgumentTypeMismatch(t *testing.T) {
	input := `
class A {
	public int f(int a) { return a; }
	public void m() { int x = this.f(true); }
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestCallArgumentWidening(t *testing.T) {
	input := `
class A { }
class B extends A { }
class C {
	public void take(A a) { }
	public void m() { this.take(new B()); }
}
`
	expectNoAnalyzerErrors(t, input)
}

// ---------------------------------------------------------------------------
// A007 - override validation
// ---------------------------------------------------------------------------

func TestA007_OverrideReturnTypeMismatch(t *testing.T) {
	input := `
class A {
	public int f() { return 1; }
}
class B extends A {
	public boolean f() { return true; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA007)
}

func TestA007_OverrideVoidMismatch(t *testing.T) {
	input := `
class A {
	public void f() { }
}
class B extends A {
	public int f() { return 1; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA007)
}

func TestA007_OverrideArityMismatch(t *testing.T) {
	input := `
class A {
	public void f(int a) { }
}
class B extends A {
	public void f(int a, int b) { }
}
`
	expectExactErrors(t, input, diagnostics.ErrA007)
}

func TestA007_OverrideStopsAtArityMismatch(t *testing.T) {
	// Arity is checked before the per-formal types; a single
	// diagnostic comes out even though the formal types differ too.
	input := `
class A {
	public void f(int a) { }
}
class B extends A {
	public void f(boolean a, boolean b) { }
}
`
	expectExactErrors(t, input, diagnostics.ErrA007)
}

func TestA003_OverrideFormalTypeMismatch(t *testing.T) {
	input := `
class A {
	public void f(int a) { }
}
class B extends A {
	public void f(boolean a) { }
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

func TestOverrideValidLinksMethod(t *testing.T) {
	input := `
class A {
	public int f(int a) { return a; }
}
class B extends A {
	public int f(int a) { return a + 1; }
}
`
	program := expectNoAnalyzerErrors(t, input)
	b := program.Classes[1]
	if b.Methods[0].Overrides == nil {
		t.Fatal("a valid override should link to the overridden method")
	}
	if b.Methods[0].Overrides.Class.Name != "A" {
		t.Errorf("expected the override to link to A.f")
	}
}

func TestOverrideChecksNearestAncestorOnly(t *testing.T) {
	// B redefines f with a new signature (invalid), C matches B. C is
	// checked against B, the nearest ancestor, so C is fine.
	input := `
class A {
	public void f(int a) { }
}
class B extends A {
	public void f(boolean a) { }
}
class C extends B {
	public void f(boolean a) { }
}
`
	expectExactErrors(t, input, diagnostics.ErrA003)
}

// ---------------------------------------------------------------------------
// A008 - member access on non-objects
// ---------------------------------------------------------------------------

func TestA008_MethodCallOnPrimitive(t *testing.T) {
	input := `
class A {
	public void m() {
		int x = 1;
		x.f();
	}
}
`
	expectExactErrors(t, input, diagnostics.ErrA008)
}

func TestA008_FieldAccessOnArray(t *testing.T) {
	input := `
class A {
	public void m() {
		int[] xs = new int[3];
		int x = xs.size;
	}
}
`
	e := expectAnalyzerError(t, input, diagnostics.ErrA008)
	if !strings.Contains(e.Message, "int[]") {
		t.Errorf("message should name the receiver type, got: %s", e.Message)
	}
}

func TestArrayLengthIsNotA008(t *testing.T) {
	input := `
class A {
	public void m() {
		int[] xs = new int[3];
		int n = xs.length;
	}
}
`
	expectNoAnalyzerErrors(t, input)
}

// ---------------------------------------------------------------------------
// A009 / A010 - hierarchy errors
// ---------------------------------------------------------------------------

func TestA009_UndefinedSuperclass(t *testing.T) {
	// The class still participates in analysis with Object as a
	// fallback parent.
	input := `
class B extends Missing {
	public void m() { int x = 1; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA009)
}

func TestA009_UndefinedTypeAnnotation(t *testing.T) {
	input := `
class A {
	Missing v;
}
`
	expectExactErrors(t, input, diagnostics.ErrA009)
}

func TestA009_UndefinedClassInNew(t *testing.T) {
	input := `
class A {
	public void m() { Object o = new Missing(); }
}
`
	expectExactErrors(t, input, diagnostics.ErrA009)
}

func TestA010_InheritanceCycle(t *testing.T) {
	input := `
class A extends B { }
class B extends A { }
`
	expectExactErrors(t, input, diagnostics.ErrA010)
}

func TestA010_SelfInheritance(t *testing.T) {
	input := `
class A extends A { }
`
	expectExactErrors(t, input, diagnostics.ErrA010)
}

func TestA010_ClassBelowCycleStillUsable(t *testing.T) {
	// D merely inherits from the cycle; cutting the cycle repairs D's
	// chain and D itself produces no diagnostic.
	input := `
class A extends B { }
class B extends A { }
class D extends B {
	int v;
	public void m() { v = 1; }
}
`
	expectExactErrors(t, input, diagnostics.ErrA010)
}

// ---------------------------------------------------------------------------
// Whole-program behavior
// ---------------------------------------------------------------------------

func TestAnalyzeCleanProgram(t *testing.T) {
	input := `
class Animal {
	int legs;
	public int countLegs() { return legs; }
	public void speak() { }
}
class Dog extends Animal {
	Dog[] pack;
	public void speak() { }
	public int packSize() {
		if (0 < pack.length) {
			return pack.length;
		}
		return 0;
	}
	public Dog leader() {
		Dog best = this;
		int i = 0;
		while (i < pack.length) {
			if (pack[i].countLegs() == best.countLegs()) {
				best = pack[i];
			}
			i = i + 1;
		}
		return best;
	}
}
`
	expectNoAnalyzerErrors(t, input)
}

func TestAnalyzeIdempotent(t *testing.T) {
	input := `
class A {
	public void m() { int x = true; }
}
`
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatal("input does not parse")
	}

	table := symbols.NewTable()
	RegisterBuiltins(table)
	a := New(table)

	first := a.Analyze(program)
	if len(first) != 1 {
		t.Fatalf("expected 1 error on the first run, got %d", len(first))
	}
	second := a.Analyze(program)
	if len(second) != 0 {
		t.Fatalf("re-analyzing an annotated program must be a no-op, got %d errors", len(second))
	}
}

func TestAnalyzeNilProgram(t *testing.T) {
	table := symbols.NewTable()
	RegisterBuiltins(table)
	if errs := New(table).Analyze(nil); errs != nil {
		t.Fatalf("expected nil, got %v", errs)
	}
}
