package brzozowski

import (
	"fmt"
	"go/token"

	"github.com/KromDaniel/brzozowski/internal/compiler"
)

// Options configures code generation.
type Options struct {
	// Pattern is the expression to embed
	Pattern string

	// Name is the generated type (e.g., "Banana" generates type Banana and var CompiledBanana)
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile generates a test file with tests and a benchmark (default: true if TestFileInputs provided)
	GenerateTestFile bool

	// TestFileInputs is a list of test inputs for the generated test file. If empty and GenerateTestFile is true, defaults to []string{""}
	TestFileInputs []string

	// Verbose logs tree statistics and generation steps to stderr
	Verbose bool

	// Strict parses Pattern with ParseStrict instead of Parse
	Strict bool
}

// Validate checks if the options are valid. An empty Pattern is valid and
// denotes the empty string.
func (o Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !token.IsIdentifier(o.Name) {
		return fmt.Errorf("name %q is not a Go identifier", o.Name)
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a Go identifier", o.Package)
	}
	return nil
}

// Compile parses the pattern and writes Go code embedding its tree.
// It returns an error if the pattern is invalid or code generation fails.
func Compile(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	parse := Parse
	if opts.Strict {
		parse = ParseStrict
	}
	tree, err := parse(opts.Pattern)
	if err != nil {
		return fmt.Errorf("failed to parse pattern: %w", err)
	}

	generateTestFile := opts.GenerateTestFile || len(opts.TestFileInputs) > 0
	testInputs := opts.TestFileInputs
	if generateTestFile && len(testInputs) == 0 {
		testInputs = []string{""}
	}

	config := compiler.Config{
		Pattern:          opts.Pattern,
		Tree:             tree,
		Name:             opts.Name,
		Package:          opts.Package,
		GenerateTestFile: generateTestFile,
		TestFileInputs:   testInputs,
		Verbose:          opts.Verbose,
	}

	c := compiler.New(config)
	c.SetOutputFile(opts.OutputFile)

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
