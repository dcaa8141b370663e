// Command brzozowski matches strings against a pattern, filters lines of a
// file, analyzes a pattern, or generates Go code embedding it.
//
// Usage:
//
//	brzozowski -pattern '(c|b)at' -match cat -match rat
//	brzozowski -pattern 'ba*n' -file words.txt
//	brzozowski -pattern '(c|b)at' -analyze
//	brzozowski -pattern '(c|b)at' -name Cat -output cat.go -package words
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/brzozowski/internal/compiler"
	"github.com/KromDaniel/brzozowski/pkg/brzozowski"
	"github.com/KromDaniel/brzozowski/stream"
)

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	pattern    string
	hasPattern bool
	matches    arrayFlags
	file       string
	analyze    bool
	trace      bool
	strict     bool
	verbose    bool
	name       string
	output     string
	pkg        string
	testInputs arrayFlags
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("brzozowski", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.pattern, "pattern", "", "pattern to use (required; may be empty for ε)")
	fs.Var(&opts.matches, "match", "input string to match in full (repeatable)")
	fs.StringVar(&opts.file, "file", "", "print the lines of this file that match in full (- for stdin)")
	fs.BoolVar(&opts.analyze, "analyze", false, "print the analysis of the pattern as JSON")
	fs.BoolVar(&opts.trace, "trace", false, "print every derivative step of each -match input")
	fs.BoolVar(&opts.strict, "strict", false, "parse with the grammar parser")
	fs.BoolVar(&opts.verbose, "verbose", false, "log parsing and generation details to stderr")
	fs.StringVar(&opts.name, "name", "Pattern", "name of the generated type")
	fs.StringVar(&opts.output, "output", "", "write generated Go code to this file")
	fs.StringVar(&opts.pkg, "package", "main", "package of the generated code")
	fs.Var(&opts.testInputs, "test-inputs", "input for the generated test file (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "pattern" {
			opts.hasPattern = true
		}
	})
	if !opts.hasPattern {
		return nil, errors.New("-pattern is required")
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if len(opts.matches) == 0 && opts.file == "" && !opts.analyze && opts.output == "" {
		return nil, errors.New("nothing to do: use -match, -file, -analyze or -output")
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "brzozowski: %v\n", err)
		}
		return exitUsage
	}

	logger := compiler.NewLogger(opts.verbose)
	logger.SetOutput(stderr)

	parse := brzozowski.Parse
	if opts.strict {
		parse = brzozowski.ParseStrict
	}
	tree, err := parse(opts.pattern)
	if err != nil {
		fmt.Fprintf(stderr, "brzozowski: invalid pattern %q: %v\n", opts.pattern, err)
		return exitFail
	}
	logger.Tree("Parsed", tree)

	if opts.analyze {
		analyze := brzozowski.Analyze
		if opts.strict {
			analyze = brzozowski.AnalyzeStrict
		}
		res, err := analyze(opts.pattern)
		if err != nil {
			fmt.Fprintf(stderr, "brzozowski: %v\n", err)
			return exitFail
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(stderr, "brzozowski: %v\n", err)
			return exitFail
		}
	}

	if opts.output != "" {
		err := brzozowski.Compile(brzozowski.Options{
			Pattern:        opts.pattern,
			Name:           opts.name,
			OutputFile:     opts.output,
			Package:        opts.pkg,
			TestFileInputs: opts.testInputs,
			Verbose:        opts.verbose,
			Strict:         opts.strict,
		})
		if err != nil {
			fmt.Fprintf(stderr, "brzozowski: %v\n", err)
			return exitFail
		}
		fmt.Fprintf(stdout, "generated %s\n", opts.output)
	}

	code := exitOK
	if len(opts.matches) > 0 {
		for _, in := range opts.matches {
			if opts.trace {
				for i, step := range tree.Trace(in) {
					fmt.Fprintf(stdout, "  q%d = %s\n", i, step)
				}
			}
			ok := tree.IsMatch(in)
			fmt.Fprintf(stdout, "%q\t%v\n", in, ok)
			if !ok {
				code = exitFail
			}
		}
	}

	if opts.file != "" {
		matched, err := filterFile(opts.file, tree, stdin, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "brzozowski: %v\n", err)
			return exitFail
		}
		logger.Log("%d matching lines in %s", matched, opts.file)
		if matched == 0 {
			code = exitFail
		}
	}

	return code
}

// filterFile copies the lines of path that tree matches to w and returns
// how many there were.
func filterFile(path string, m stream.Matcher, stdin io.Reader, w io.Writer) (int, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	counter := &lineCounter{}
	filtered := stream.LineFilter(r, m, stream.DefaultConfig())
	if _, err := io.Copy(io.MultiWriter(w, counter), filtered); err != nil {
		return counter.lines(), fmt.Errorf("reading %s: %w", path, err)
	}
	return counter.lines(), nil
}

// lineCounter counts the lines written to it; a final line without a
// newline counts too.
type lineCounter struct {
	newlines int
	pending  bool
}

func (c *lineCounter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			c.newlines++
			c.pending = false
		} else {
			c.pending = true
		}
	}
	return len(p), nil
}

func (c *lineCounter) lines() int {
	if c.pending {
		return c.newlines + 1
	}
	return c.newlines
}
