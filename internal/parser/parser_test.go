package parser_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/simplelang/internal/lexer"
	"github.com/funvibe/simplelang/internal/parser"
	"github.com/funvibe/simplelang/internal/pipeline"
	"github.com/funvibe/simplelang/internal/prettyprinter"
)

var update = flag.Bool("update", false, "update snapshot files")

type parseCase struct {
	name     string
	input    string
	extended bool
}

var parseCases = []parseCase{
	{name: "precedence", input: "var x = 1 + 2 * 3;"},
	{name: "grouping", input: "var x = (1 + 2) * 3;"},
	{name: "power_right_assoc", input: "var x = 2 ** 3 ** 2;"},
	{name: "minus_left_assoc", input: "var x = 10 - 3 - 2;"},
	{name: "assign_in_expression", input: "var x = 1;\nvar y = (x = x + 1);\nprint y;"},
	{name: "redundant_parens", input: "print ((1)) + (2 * 3);"},
	{name: "mixed_levels", input: "print 2 * 3 ** 2 - 8 / 4 / 2;"},
	{name: "expression_statement", input: "var x = 0;\nx = x + 5;", extended: true},
}

// parse runs the lexer and parser stages on input.
func parse(t *testing.T, input string, extended bool) *pipeline.PipelineContext {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input, ExpressionStatements: extended}

	lexerProcessor := &lexer.LexerProcessor{}
	ctx = lexerProcessor.Process(ctx)

	parserProcessor := &parser.ParserProcessor{}
	ctx = parserProcessor.Process(ctx)

	if len(ctx.Errors) > 0 {
		var errorMessages []string
		for _, err := range ctx.Errors {
			errorMessages = append(errorMessages, err.Error())
		}
		t.Fatalf("parsing failed with errors:\n%s", strings.Join(errorMessages, "\n"))
	}
	return ctx
}

func dumpTree(ctx *pipeline.PipelineContext) string {
	treePrinter := prettyprinter.NewTreePrinter()
	ctx.AstRoot.Accept(treePrinter)
	return treePrinter.String()
}

func printCode(ctx *pipeline.PipelineContext) string {
	codePrinter := prettyprinter.NewCodePrinter(ctx.Operators)
	ctx.AstRoot.Accept(codePrinter)
	return codePrinter.String()
}

func TestParser(t *testing.T) {
	for _, tc := range parseCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := parse(t, tc.input, tc.extended)

			treeOutput := dumpTree(ctx)
			codeOutput := printCode(ctx)

			actual := "--- Input ---\n" + tc.input + "\n\n--- AST Tree ---\n" + treeOutput + "\n--- Source Code ---\n" + codeOutput

			snapshotFile := filepath.Join("testdata", tc.name+".snap")

			if *update {
				err := os.WriteFile(snapshotFile, []byte(actual), 0644)
				if err != nil {
					t.Fatalf("failed to update snapshot: %v", err)
				}
				return
			}

			expected, err := os.ReadFile(snapshotFile)
			if err != nil {
				t.Fatalf("failed to read snapshot file: %v. Run with -update flag to create it.", err)
			}

			if string(expected) != actual {
				t.Errorf("snapshot mismatch:\n--- expected\n%s\n--- actual\n%s", string(expected), actual)
			}
		})
	}
}

// Printed code parses back to the same tree.
func TestReparse(t *testing.T) {
	for _, tc := range parseCases {
		t.Run(tc.name, func(t *testing.T) {
			first := parse(t, tc.input, tc.extended)
			code := printCode(first)
			second := parse(t, code, tc.extended)

			if got, want := dumpTree(second), dumpTree(first); got != want {
				t.Errorf("tree changed after reprinting %q:\n--- first\n%s\n--- second\n%s", code, want, got)
			}
		})
	}
}

// Parsing the same input twice yields identical dumps.
func TestDeterministicDump(t *testing.T) {
	input := "var a = 1;\nvar b = a * (a + 2) ** 2;\nprint b - a - 1;"
	first := dumpTree(parse(t, input, false))
	for i := 0; i < 5; i++ {
		if got := dumpTree(parse(t, input, false)); got != first {
			t.Fatalf("dump differs on run %d:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestDeclarationsAtParseTime(t *testing.T) {
	ctx := parse(t, "var a = 1;\n\nvar b = a;", false)

	entry, ok := ctx.SymbolTable.Lookup("a")
	if !ok || entry.Line != 1 {
		t.Errorf("a: %+v, %v; want declared on line 1", entry, ok)
	}
	entry, ok = ctx.SymbolTable.Lookup("b")
	if !ok || entry.Line != 3 {
		t.Errorf("b: %+v, %v; want declared on line 3", entry, ok)
	}
	if entry.Value != 0 {
		t.Errorf("b = %d before evaluation, want 0", entry.Value)
	}
}

func TestEmptyProgram(t *testing.T) {
	for _, input := range []string{"", "  \n\t\n"} {
		ctx := parse(t, input, false)
		if n := len(ctx.AstRoot.Statements); n != 0 {
			t.Errorf("%q: %d statements, want 0", input, n)
		}
		if got := dumpTree(ctx); got != "ROOT\n" {
			t.Errorf("%q: dump = %q, want ROOT only", input, got)
		}
	}
}

func TestDeepNestingWithinLimit(t *testing.T) {
	input := "print " + strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200) + ";"
	ctx := parse(t, input, false)
	if got := printCode(ctx); got != "print 1;\n" {
		t.Errorf("code = %q", got)
	}
}
