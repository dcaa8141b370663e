package compiler

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/brzozowski/internal/codegen"
	"github.com/KromDaniel/brzozowski/internal/syntax"
)

// TestFilePath returns the path of the test file generated next to
// outputFile.
func TestFilePath(outputFile string) string {
	return strings.TrimSuffix(outputFile, ".go") + "_test.go"
}

// generateTestFile writes a test and a benchmark for the generated type.
// Expected results are computed now, at generation time. When the regexp
// package reads the pattern the same way, the test also checks it agrees.
func (c *Compiler) generateTestFile() error {
	inputs := c.config.TestFileInputs
	if len(inputs) == 0 {
		inputs = []string{""}
	}
	name := c.config.Name
	compiled := codegen.CompiledVarName(name)

	f := jen.NewFile(c.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by brzozowski from pattern %q. DO NOT EDIT.", c.config.Pattern))

	cases := make([]jen.Code, 0, len(inputs))
	for _, in := range inputs {
		cases = append(cases, jen.Values(jen.Lit(in), jen.Lit(c.config.Tree.IsMatch(in))))
	}

	body := []jen.Code{
		jen.Id("tests").Op(":=").Index().Struct(
			jen.Id("input").String(),
			jen.Id("want").Bool(),
		).Values(cases...),
	}

	check := []jen.Code{
		jen.If(
			jen.Id("got").Op(":=").Id(compiled).Dot(codegen.MatchStringName).Call(jen.Id("tt").Dot("input")),
			jen.Id("got").Op("!=").Id("tt").Dot("want"),
		).Block(
			jen.Id("t").Dot("Errorf").Call(
				jen.Lit(name+".MatchString(%q) = %v, want %v"),
				jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want"),
			),
		),
	}

	std, ok := syntax.RegexpEquivalent(c.config.Pattern)
	if ok {
		c.logger.Log("Generated test compares against regexp %s", std)
		body = append(body,
			jen.Id("stdReg").Op(":=").Qual("regexp", "MustCompile").Call(jen.Lit(std)),
		)
		check = append(check,
			jen.If(
				jen.Id("std").Op(":=").Id("stdReg").Dot("MatchString").Call(jen.Id("tt").Dot("input")),
				jen.Id("std").Op("!=").Id("tt").Dot("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(
					jen.Lit("regexp.MatchString(%q) = %v, want %v"),
					jen.Id("tt").Dot("input"), jen.Id("std"), jen.Id("tt").Dot("want"),
				),
			),
		)
	} else {
		c.logger.Log("Pattern has no regexp equivalent, generated test checks precomputed results only")
	}

	body = append(body,
		jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(check...),
	)

	f.Func().Id("Test"+name+codegen.MatchStringName).
		Params(jen.Id("t").Op("*").Qual("testing", "T")).
		Block(body...)
	f.Line()

	inputLits := make([]jen.Code, 0, len(inputs))
	for _, in := range inputs {
		inputLits = append(inputLits, jen.Lit(in))
	}
	f.Func().Id("Benchmark"+name+codegen.MatchStringName).
		Params(jen.Id("b").Op("*").Qual("testing", "B")).
		Block(
			jen.Id("inputs").Op(":=").Index().String().Values(inputLits...),
			jen.Id("b").Dot("ResetTimer").Call(),
			jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id("b").Dot("N"), jen.Id("i").Op("++")).Block(
				jen.For(jen.List(jen.Id("_"), jen.Id("in")).Op(":=").Range().Id("inputs")).Block(
					jen.Id(compiled).Dot(codegen.MatchStringName).Call(jen.Id("in")),
				),
			),
		)

	if ok {
		f.Line()
		f.Func().Id("Benchmark"+name+"StdRegexp").
			Params(jen.Id("b").Op("*").Qual("testing", "B")).
			Block(
				jen.Id("stdReg").Op(":=").Qual("regexp", "MustCompile").Call(jen.Lit(std)),
				jen.Id("inputs").Op(":=").Index().String().Values(inputLits...),
				jen.Id("b").Dot("ResetTimer").Call(),
				jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id("b").Dot("N"), jen.Id("i").Op("++")).Block(
					jen.For(jen.List(jen.Id("_"), jen.Id("in")).Op(":=").Range().Id("inputs")).Block(
						jen.Id("stdReg").Dot("MatchString").Call(jen.Id("in")),
					),
				),
			)
	}

	path := TestFilePath(c.config.OutputFile)
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save test file: %w", err)
	}
	c.logger.Log("Wrote %s", path)
	return nil
}
