package backend

import (
	"testing"

	"github.com/funvibe/simplelang/internal/diagnostics"
)

type runResult struct {
	out  string
	errs []*diagnostics.DiagnosticError
}

func (r runResult) code() diagnostics.ErrorCode {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0].Code
}

// syntaxError reports errors raised while parsing.
func (r runResult) syntaxError() bool {
	c := r.code()
	return c != "" && (c[0] == 'P' || c[0] == 'A')
}

// FuzzDifferential compares the tree and stream backends on programs that
// parse completely.
func FuzzDifferential(f *testing.F) {
	f.Add("print 2 ** 3 ** 2;")
	f.Add("var x = 1;\nvar y = (x = x + 1);\nprint x + y;")
	f.Add("var z = 0;\nprint 1;\nz = 4 / z;")
	f.Add("print q;")
	f.Add("print 1 ** (0 - 1);")
	f.Add("print w;\nvar w = 3;")

	f.Fuzz(func(t *testing.T, src string) {
		if len(src) > 2000 {
			return
		}
		treeOut, treeCtx := runOn(NewTreeWalk(), src, true)
		tree := runResult{out: treeOut, errs: treeCtx.Errors}
		if tree.syntaxError() {
			return
		}

		streamOut, streamCtx := runOn(NewStream(), src, true)
		stream := runResult{out: streamOut, errs: streamCtx.Errors}

		if tree.out != stream.out {
			t.Fatalf("output differs for %q: tree %q, stream %q", src, tree.out, stream.out)
		}
		if len(tree.errs) != len(stream.errs) {
			t.Fatalf("error count differs for %q: tree %d, stream %d", src, len(tree.errs), len(stream.errs))
		}
		for i := range tree.errs {
			if tree.errs[i].Error() != stream.errs[i].Error() {
				t.Fatalf("error differs for %q: tree %q, stream %q", src, tree.errs[i].Error(), stream.errs[i].Error())
			}
		}
	})
}
