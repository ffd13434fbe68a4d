package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/simplelang/internal/backend"
	"github.com/funvibe/simplelang/internal/config"
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/lexer"
	"github.com/funvibe/simplelang/internal/parser"
	"github.com/funvibe/simplelang/internal/pipeline"
	"github.com/funvibe/simplelang/internal/prettyprinter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	path       string
	dumpAST    bool
	format     bool
	backend    string
	profile    string
	configPath string
	help       bool
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	endOfOptions := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" && !endOfOptions {
			endOfOptions = true
			continue
		}
		if endOfOptions || !strings.HasPrefix(arg, "-") {
			if opts.path != "" {
				return nil, fmt.Errorf("expected exactly one source file, got %q and %q", opts.path, arg)
			}
			opts.path = arg
			continue
		}

		name := strings.TrimLeft(arg, "-")
		value, hasValue := "", false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, value, hasValue = name[:eq], name[eq+1:], true
		}

		switch name {
		case "h", "help":
			opts.help = true
			continue
		case "ast":
			opts.dumpAST = true
			continue
		case "fmt":
			opts.format = true
			continue
		case "backend", "profile", "config":
		default:
			return nil, fmt.Errorf("unknown option %q", arg)
		}

		if !hasValue {
			if i+1 >= len(args) {
				return nil, fmt.Errorf("option %q needs a value", arg)
			}
			i++
			value = args[i]
		}
		switch name {
		case "backend":
			opts.backend = value
		case "profile":
			opts.profile = value
		case "config":
			opts.configPath = value
		}
	}

	if opts.path == "" && !opts.help {
		return nil, fmt.Errorf("expected exactly one source file")
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: simplelang [options] [--] <file%s>

Options:
  -ast                 print the syntax tree before running
  -fmt                 print the source with canonical spacing and
                       parentheses instead of running it
  -backend tree|stream evaluate after parsing everything (tree, default)
                       or statement by statement (stream)
  -profile classic|extended
                       extended accepts bare expression statements
  -config <file>       language profile (default: %s next to the source)
`, config.SourceFileExt, config.ProfileFileNames[0])
}

// resolveProfile applies, lowest priority first: built-in defaults, the
// profile file found next to the source or given with -config, and flags.
func resolveProfile(opts *options) (*config.Profile, error) {
	path := opts.configPath
	if path == "" {
		found, err := config.FindProfile(filepath.Dir(opts.path))
		if err != nil {
			return nil, err
		}
		path = found
	}

	profile := config.DefaultProfile()
	if path != "" {
		loaded, err := config.LoadProfile(path)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	if opts.profile != "" {
		if opts.profile != config.ProfileClassic && opts.profile != config.ProfileExtended {
			return nil, fmt.Errorf("unknown profile %q (want %s or %s)", opts.profile, config.ProfileClassic, config.ProfileExtended)
		}
		profile.Name = opts.profile
		profile.ExpressionStatements = nil
	}
	return profile, nil
}

// astDumpProcessor writes the parsed tree to w.
type astDumpProcessor struct {
	w io.Writer
}

func (d *astDumpProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	printer := prettyprinter.NewTreePrinter()
	ctx.AstRoot.Accept(printer)
	fmt.Fprint(d.w, printer.String())
	return ctx
}

// formatProcessor writes the parsed program back as source code.
type formatProcessor struct {
	w io.Writer
}

func (f *formatProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	printer := prettyprinter.NewCodePrinter(ctx.Operators)
	ctx.AstRoot.Accept(printer)
	fmt.Fprint(f.w, printer.String())
	return ctx
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		printUsage(stderr)
		return config.ExitUserError
	}
	if opts.help {
		printUsage(stdout)
		return config.ExitOK
	}

	content, err := os.ReadFile(opts.path)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %s\n", err)
		return config.ExitUserError
	}

	profile, err := resolveProfile(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading profile: %s\n", err)
		return config.ExitUserError
	}
	table, err := profile.OperatorTable()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading profile: %s\n", err)
		return config.ExitUserError
	}

	b, err := backend.ByName(opts.backend)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return config.ExitUserError
	}

	ctx := pipeline.NewPipelineContext(string(content))
	ctx.FilePath = opts.path
	ctx.Operators = table
	ctx.ExpressionStatements = profile.AllowsExpressionStatements()
	ctx.Out = stdout

	var afterParse []pipeline.Processor
	if opts.dumpAST {
		afterParse = append(afterParse, &astDumpProcessor{w: stdout})
	}
	if opts.format {
		// Formatting never executes the program.
		stages := []pipeline.Processor{&lexer.LexerProcessor{}, &parser.ParserProcessor{}}
		stages = append(stages, afterParse...)
		stages = append(stages, &formatProcessor{w: stdout})
		ctx = pipeline.New(stages...).Run(ctx)
	} else {
		ctx = backend.NewPipeline(b, afterParse...).Run(ctx)
	}

	if len(ctx.Errors) == 0 {
		return config.ExitOK
	}

	color := false
	if f, ok := stderr.(*os.File); ok {
		color = diagnostics.UseColor(f)
	}
	diagnostics.Fprint(stderr, ctx.Errors, color)
	for _, err := range ctx.Errors {
		if err.IsInternal() {
			return config.ExitInternalError
		}
	}
	return config.ExitUserError
}
