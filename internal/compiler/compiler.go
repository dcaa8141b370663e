// Package compiler generates Go source for parsed patterns.
//
// The generated file embeds the expression tree as a composite literal, so
// programs using it skip parsing at start-up, and exposes MatchString and
// MatchBytes methods that run the derivative matcher on it.
package compiler

import (
	"fmt"
	"go/token"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/brzozowski/expr"
	"github.com/KromDaniel/brzozowski/internal/codegen"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern          string
	Tree             *expr.Expr // Parsed form of Pattern
	Name             string
	OutputFile       string
	Package          string
	GenerateTestFile bool     // Generate test file with tests and benchmarks
	TestFileInputs   []string // Test inputs for generated test file
	Verbose          bool     // Enable verbose logging of tree statistics
}

// Validate checks that the config can be generated.
func (c Config) Validate() error {
	if c.Tree == nil {
		return fmt.Errorf("config has no parsed tree")
	}
	if c.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !token.IsIdentifier(c.Name) {
		return fmt.Errorf("name %q is not a Go identifier", c.Name)
	}
	if c.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a Go identifier", c.Package)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	return nil
}

// Compiler generates Go code from a parsed pattern.
type Compiler struct {
	config Config
	file   *jen.File
	logger *Logger
	stats  AnalysisResult
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	c := &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: NewLogger(config.Verbose),
	}
	c.file.ImportName(codegen.ExprPath, "expr")
	if config.Tree != nil {
		c.analyzeAndLog()
	}
	return c
}

// analyzeAndLog computes tree statistics and logs them in verbose mode.
func (c *Compiler) analyzeAndLog() {
	c.stats = analyzeTree(c.config.Tree)

	c.logger.Section("Pattern Analysis")
	c.logger.Log("Pattern: %s", c.config.Pattern)
	c.logger.Tree("Tree", c.config.Tree)
	c.logger.Log("Depth: %d", c.stats.Depth)
	c.logger.Log("Alphabet: %q", c.stats.Alphabet)
	c.logger.Log("Nullable: %v", c.stats.Nullable)
	c.logger.Log("Labels: %v", c.stats.FeatureLabels)
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// Logger returns the compiler's logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// method returns a jen.Statement declaring a method on the generated type.
func (c *Compiler) method(name string) *jen.Statement {
	return c.file.Func().
		Params(jen.Id(c.config.Name)).
		Id(name)
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	if err := c.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.logger.Section("Generation")
	c.file.HeaderComment(fmt.Sprintf("Code generated by brzozowski from pattern %q. DO NOT EDIT.", c.config.Pattern))

	name := c.config.Name
	exprVar := codegen.ExprVarName(name)

	c.file.Commentf("%s matches whole strings against %q.", name, c.config.Pattern)
	c.file.Type().Id(name).Struct()
	c.file.Line()

	c.file.Var().Id(codegen.CompiledVarName(name)).Op("=").Id(name).Values()
	c.file.Line()

	c.logger.Log("Embedding %d nodes as %s", c.stats.Size, exprVar)
	c.file.Var().Id(exprVar).Op("=").Add(TreeLiteral(c.config.Tree))
	c.file.Line()

	c.method(codegen.PatternName).
		Params().
		Params(jen.String()).
		Block(jen.Return(jen.Lit(c.config.Pattern)))

	c.method(codegen.ExprName).
		Params().
		Params(jen.Op("*").Qual(codegen.ExprPath, "Expr")).
		Block(jen.Return(jen.Id(exprVar)))

	c.method(codegen.MatchStringName).
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Bool()).
		Block(jen.Return(jen.Id(exprVar).Dot("IsMatch").Call(jen.Id(codegen.InputName))))

	c.method(codegen.MatchBytesName).
		Params(jen.Id(codegen.InputName).Index().Byte()).
		Params(jen.Bool()).
		Block(jen.Return(jen.Id(exprVar).Dot("MatchBytes").Call(jen.Id(codegen.InputName))))

	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	c.logger.Log("Wrote %s", c.config.OutputFile)

	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}
	return nil
}

// TreeLiteral returns a Go expression that rebuilds e. Epsilon and Empty
// leaves reuse the package constructors; every other node becomes an
// &expr.Expr composite literal.
func TreeLiteral(e *expr.Expr) *jen.Statement {
	switch e.Op {
	case expr.OpEpsilon:
		return jen.Qual(codegen.ExprPath, "Epsilon").Call()
	case expr.OpEmpty:
		return jen.Qual(codegen.ExprPath, "Empty").Call()
	}

	fields := jen.Dict{
		jen.Id("Op"): jen.Qual(codegen.ExprPath, opIdent(e.Op)),
	}
	switch e.Op {
	case expr.OpTerm:
		fields[jen.Id("Rune")] = jen.LitRune(e.Rune)
	case expr.OpConcat, expr.OpUnion:
		fields[jen.Id("Left")] = TreeLiteral(e.Left)
		fields[jen.Id("Right")] = TreeLiteral(e.Right)
	case expr.OpKleene:
		fields[jen.Id("Left")] = TreeLiteral(e.Left)
	}
	return jen.Op("&").Qual(codegen.ExprPath, "Expr").Values(fields)
}

func opIdent(op expr.Op) string {
	return "Op" + op.String()
}
