package backend

import (
	"bytes"
	"testing"

	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/pipeline"
)

func runOn(b Backend, src string, extended bool) (string, *pipeline.PipelineContext) {
	var out bytes.Buffer
	ctx := pipeline.NewPipelineContext(src)
	ctx.FilePath = "test.sl"
	ctx.ExpressionStatements = extended
	ctx.Out = &out
	ctx = NewPipeline(b).Run(ctx)
	return out.String(), ctx
}

func TestByName(t *testing.T) {
	for name, want := range map[string]string{"": "tree", "tree": "tree", "stream": "stream"} {
		b, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if b.Name() != want {
			t.Errorf("ByName(%q).Name() = %s, want %s", name, b.Name(), want)
		}
	}
	if _, err := ByName("vm"); err == nil {
		t.Error("ByName(vm) should fail")
	}
}

func TestBackendsAgree(t *testing.T) {
	programs := []struct {
		name     string
		src      string
		extended bool
	}{
		{"arithmetic", "print 2 ** 3 ** 2;\nprint 10 - 3 - 2;\nprint (1 + 2) * 3;", false},
		{"variables", "var x = 1;\nvar y = (x = x + 1);\nprint x;\nprint y;", false},
		{"expression statements", "var n = 3;\nn = n * n;\nprint n;", true},
		{"runtime error", "print 1;\nprint 1 / 0;\nprint 2;", false},
		{"undeclared", "print nope;", false},
		{"read before declaration", "print a;\nvar a = 5;\nprint a * 2;", false},
		{"redeclaration", "var r = 1;\nvar r = 2;", false},
	}
	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			treeOut, treeCtx := runOn(NewTreeWalk(), p.src, p.extended)
			streamOut, streamCtx := runOn(NewStream(), p.src, p.extended)

			if treeOut != streamOut {
				t.Errorf("output differs: tree %q, stream %q", treeOut, streamOut)
			}
			if len(treeCtx.Errors) != len(streamCtx.Errors) {
				t.Fatalf("error count differs: tree %d, stream %d", len(treeCtx.Errors), len(streamCtx.Errors))
			}
			for i := range treeCtx.Errors {
				if a, b := treeCtx.Errors[i].Error(), streamCtx.Errors[i].Error(); a != b {
					t.Errorf("error differs: tree %q, stream %q", a, b)
				}
			}
		})
	}
}

func TestTreeWalkReportsParseErrorsBeforeRunning(t *testing.T) {
	out, ctx := runOn(NewTreeWalk(), "print 1;\nprint (2;", false)
	if out != "" {
		t.Errorf("output = %q, want none", out)
	}
	if len(ctx.Errors) != 1 || ctx.Errors[0].Code != diagnostics.ErrP002 {
		t.Fatalf("errors = %v, want one P002", ctx.Errors)
	}
}

func TestStreamRunsStatementsBeforeParseError(t *testing.T) {
	out, ctx := runOn(NewStream(), "print 1;\nprint (2;", false)
	if out != "1\n" {
		t.Errorf("output = %q, want %q", out, "1\n")
	}
	if len(ctx.Errors) != 1 || ctx.Errors[0].Code != diagnostics.ErrP002 {
		t.Fatalf("errors = %v, want one P002", ctx.Errors)
	}
	if got := ctx.Errors[0].File; got != "test.sl" {
		t.Errorf("file = %q, want test.sl", got)
	}
	if n := len(ctx.AstRoot.Statements); n != 1 {
		t.Errorf("executed statements = %d, want 1", n)
	}
}

func TestLexicalErrorStopsBothBackends(t *testing.T) {
	for _, b := range []Backend{NewTreeWalk(), NewStream()} {
		out, ctx := runOn(b, "print 1;\nprint 2 $ 3;", false)
		if out != "" {
			t.Errorf("%s: output = %q, want none", b.Name(), out)
		}
		if len(ctx.Errors) != 1 || ctx.Errors[0].Code != diagnostics.ErrL001 {
			t.Errorf("%s: errors = %v, want one L001", b.Name(), ctx.Errors)
		}
	}
}

func TestMissingInputsAreInternal(t *testing.T) {
	ctx := pipeline.NewPipelineContext("")
	if err := NewTreeWalk().Run(ctx); diagnostics.From(err).Code != diagnostics.ErrI002 {
		t.Errorf("tree without AST: got %v", err)
	}
	if err := NewStream().Run(ctx); diagnostics.From(err).Code != diagnostics.ErrI002 {
		t.Errorf("stream without tokens: got %v", err)
	}
}

type recordingProcessor struct {
	statements int
	called     bool
}

func (r *recordingProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	r.called = true
	if ctx.AstRoot != nil {
		r.statements = len(ctx.AstRoot.Statements)
	}
	return ctx
}

func TestAfterParseSeesWholeProgram(t *testing.T) {
	for _, b := range []Backend{NewTreeWalk(), NewStream()} {
		rec := &recordingProcessor{}
		ctx := pipeline.NewPipelineContext("var a = 1;\nprint a;\nprint a + 1;")
		ctx.Out = &bytes.Buffer{}
		NewPipeline(b, rec).Run(ctx)
		if !rec.called || rec.statements != 3 {
			t.Errorf("%s: after-parse stage saw %d statements (called %v), want 3", b.Name(), rec.statements, rec.called)
		}
	}
}

// Declarations are made before anything runs, so a read ahead of the var
// statement sees 0 on both backends.
func TestReadBeforeDeclaration(t *testing.T) {
	src := "print w;\nvar w = 3;\nprint w;"
	for _, b := range []Backend{NewTreeWalk(), NewStream()} {
		out, ctx := runOn(b, src, false)
		if len(ctx.Errors) != 0 {
			t.Fatalf("%s: unexpected error %s", b.Name(), ctx.Errors[0].Error())
		}
		if out != "0\n3\n" {
			t.Errorf("%s: output = %q, want %q", b.Name(), out, "0\n3\n")
		}
		if entry, ok := ctx.SymbolTable.Lookup("w"); !ok || entry.Line != 2 || entry.Value != 3 {
			t.Errorf("%s: w = %+v, %v; want line 2 value 3", b.Name(), entry, ok)
		}
	}
}

func TestStreamRedeclarationAfterOutput(t *testing.T) {
	out, ctx := runOn(NewStream(), "var x = 1;\nprint x;\nvar x = 2;", false)
	if out != "1\n" {
		t.Errorf("output = %q, want %q", out, "1\n")
	}
	if len(ctx.Errors) != 1 || ctx.Errors[0].Code != diagnostics.ErrA001 {
		t.Fatalf("errors = %v, want one A001", ctx.Errors)
	}
	want := "redeclaration of variable 'x' on line 3 (originally declared on line 1)"
	if ctx.Errors[0].Message != want {
		t.Errorf("message = %q, want %q", ctx.Errors[0].Message, want)
	}
}

func TestNulByteIsLexicalError(t *testing.T) {
	for _, b := range []Backend{NewTreeWalk(), NewStream()} {
		out, ctx := runOn(b, "print 1;\x00print 2;", false)
		if out != "" {
			t.Errorf("%s: output = %q, want none", b.Name(), out)
		}
		if len(ctx.Errors) != 1 || ctx.Errors[0].Code != diagnostics.ErrL001 {
			t.Fatalf("%s: errors = %v, want one L001", b.Name(), ctx.Errors)
		}
		if got, want := ctx.Errors[0].Error(), `test.sl:1:9: L001: illegal character "\x00"`; got != want {
			t.Errorf("%s: Error() = %q, want %q", b.Name(), got, want)
		}
	}
}
