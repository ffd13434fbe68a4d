// Package backend provides an interface for different execution backends.
// This allows switching between whole-program and statement-at-a-time
// evaluation.
package backend

import (
	"fmt"

	"github.com/funvibe/simplelang/internal/lexer"
	"github.com/funvibe/simplelang/internal/parser"
	"github.com/funvibe/simplelang/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run executes the program held by the pipeline context
	Run(ctx *pipeline.PipelineContext) error

	// Name returns the backend name for display
	Name() string

	// NeedsAST reports whether the parser stage must run before Run.
	NeedsAST() bool
}

// ByName returns the backend registered under name.
func ByName(name string) (Backend, error) {
	switch name {
	case "tree", "":
		return NewTreeWalk(), nil
	case "stream":
		return NewStream(), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want tree or stream)", name)
}

// NewPipeline assembles the stages needed to run a program on b.
// afterParse stages see the complete tree: they run right after the parser
// on backends that need one, and after execution on the others.
func NewPipeline(b Backend, afterParse ...pipeline.Processor) *pipeline.Pipeline {
	processors := []pipeline.Processor{&lexer.LexerProcessor{}}
	if b.NeedsAST() {
		processors = append(processors, &parser.ParserProcessor{})
		processors = append(processors, afterParse...)
		processors = append(processors, NewExecutionProcessor(b))
	} else {
		processors = append(processors, NewExecutionProcessor(b))
		processors = append(processors, afterParse...)
	}
	return pipeline.New(processors...)
}
