package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/KromDaniel/brzozowski/internal/randgen"
	"github.com/KromDaniel/brzozowski/internal/syntax"
	"github.com/KromDaniel/brzozowski/pkg/brzozowski"
)

type patternCategory string

const (
	categorySimple      patternCategory = "simple"
	categoryComplex     patternCategory = "complex"
	categoryVeryComplex patternCategory = "very_complex"
)

var orderedCategories = []patternCategory{categorySimple, categoryComplex, categoryVeryComplex}

// categoryShape controls the random trees generated for a category.
type categoryShape struct {
	prefix   string
	alphabet string
	maxDepth int
	maxInput int
}

var shapes = map[patternCategory]categoryShape{
	categorySimple:      {prefix: "Simple", alphabet: "ab", maxDepth: 3, maxInput: 6},
	categoryComplex:     {prefix: "Complex", alphabet: "abc", maxDepth: 5, maxInput: 16},
	categoryVeryComplex: {prefix: "VeryComplex", alphabet: "abcd", maxDepth: 8, maxInput: 64},
}

type patternSpec struct {
	Category patternCategory
	Name     string
	Pattern  string
	Inputs   []string
}

type categoryStats struct {
	Patterns  int
	TestCases int
}

type commandResult struct {
	Command  string
	Output   string
	Duration time.Duration
	Err      error
}

type benchmarkResult struct {
	Name        string
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

type benchmarkComparison struct {
	Category      patternCategory
	DerivFaster   int
	StdlibFaster  int
	DerivAvgNs    float64
	StdlibAvgNs   float64
	DerivAvgBytes float64
	Compared      int
}

var (
	command   = flag.String("command", "", "Command to run: generate, benchmark, delete")
	outputDir = flag.String("output-dir", "", "Output directory for generated tests (default: benchmarks/mass_generated)")
	count     = flag.Int("count", 20, "Patterns per category")
	seed      = flag.Int64("seed", 42, "Random seed for pattern generation")
	helpFlag  = flag.Bool("help", false, "Show help message")
)

const appName = "mass_generator"

func main() {
	flag.Parse()

	if *helpFlag {
		printHelp()
		return
	}

	if *command == "" {
		fmt.Fprintf(os.Stderr, "Error: -command flag is required\n\n")
		printHelp()
		os.Exit(1)
	}

	workingDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve working directory: %v\n", err)
		os.Exit(1)
	}

	targetDir := *outputDir
	if targetDir == "" {
		targetDir = filepath.Join(workingDir, "benchmarks", "mass_generated")
	}

	switch *command {
	case "generate":
		err = generateTests(targetDir)
	case "benchmark":
		err = runBenchmarks(targetDir)
	case "delete":
		err = deleteGeneratedTests(targetDir)
	default:
		err = fmt.Errorf("unknown command '%s'. Use 'generate', 'benchmark', or 'delete'", *command)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildPatternSpecs draws count random patterns per category. The same
// seed always yields the same specs, so benchmark reruns find the tests
// generate wrote.
func buildPatternSpecs(count int, seed int64) []patternSpec {
	rng := rand.New(rand.NewSource(seed))
	specs := make([]patternSpec, 0, count*len(orderedCategories))

	for _, cat := range orderedCategories {
		shape := shapes[cat]
		prefix := shape.prefix
		for i := 0; i < count; i++ {
			pattern := randgen.Pattern(rng, shape.alphabet, shape.maxDepth)
			raw := []string{""}
			for j := 0; j < 8; j++ {
				raw = append(raw, randgen.String(rng, shape.alphabet, shape.maxInput))
			}
			specs = append(specs, patternSpec{
				Category: cat,
				Name:     fmt.Sprintf("%s%03d", prefix, i+1),
				Pattern:  pattern,
				Inputs:   dedupeInputs(raw),
			})
		}
	}
	return specs
}

func dedupeInputs(inputs []string) []string {
	seen := make(map[string]struct{}, len(inputs))
	result := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in]; ok {
			continue
		}
		seen[in] = struct{}{}
		result = append(result, in)
	}
	return result
}

func validateSpecs(specs []patternSpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("no pattern specs generated")
	}

	categorySet := make(map[patternCategory]struct{})
	for _, spec := range specs {
		if _, err := brzozowski.Parse(spec.Pattern); err != nil {
			return fmt.Errorf("spec %s has invalid pattern %q: %v", spec.Name, spec.Pattern, err)
		}
		if _, ok := syntax.RegexpEquivalent(spec.Pattern); !ok {
			return fmt.Errorf("spec %s pattern %q has no regexp equivalent", spec.Name, spec.Pattern)
		}
		if len(spec.Inputs) < 2 {
			return fmt.Errorf("spec %s has insufficient inputs", spec.Name)
		}
		categorySet[spec.Category] = struct{}{}
	}

	if len(categorySet) < len(orderedCategories) {
		return fmt.Errorf("expected patterns across %d categories, found %d", len(orderedCategories), len(categorySet))
	}
	return nil
}

func collectStats(specs []patternSpec) (map[patternCategory]*categoryStats, int) {
	stats := map[patternCategory]*categoryStats{}
	total := 0
	for _, spec := range specs {
		bucket := stats[spec.Category]
		if bucket == nil {
			bucket = &categoryStats{}
			stats[spec.Category] = bucket
		}
		bucket.Patterns++
		bucket.TestCases += len(spec.Inputs)
		total += len(spec.Inputs)
	}
	return stats, total
}

func generateTests(outputDir string) error {
	fmt.Printf("Generating tests in directory: %s\n", outputDir)
	start := time.Now()

	specs := buildPatternSpecs(*count, *seed)
	if err := validateSpecs(specs); err != nil {
		return fmt.Errorf("spec validation failed: %w", err)
	}

	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to clean existing directory: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, spec := range specs {
		caseDir := filepath.Join(outputDir, spec.Name)
		if err := os.MkdirAll(caseDir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", spec.Name, err)
		}

		opts := brzozowski.Options{
			Pattern:          spec.Pattern,
			Name:             spec.Name,
			OutputFile:       filepath.Join(caseDir, fmt.Sprintf("%s.go", strings.ToLower(spec.Name))),
			Package:          "generated",
			GenerateTestFile: true,
			TestFileInputs:   spec.Inputs,
		}
		if err := brzozowski.Compile(opts); err != nil {
			return fmt.Errorf("failed to generate artifacts for %s: %w", spec.Name, err)
		}
	}

	stats, totalTestCases := collectStats(specs)
	fmt.Printf("Generated %d patterns (%d test cases) in %v\n", len(specs), totalTestCases, time.Since(start).Round(time.Millisecond))
	fmt.Println("\nGenerated patterns by category:")
	for _, cat := range orderedCategories {
		if stat := stats[cat]; stat != nil {
			fmt.Printf("  %s: %d patterns, %d test cases\n", cat, stat.Patterns, stat.TestCases)
		}
	}
	return nil
}

func runBenchmarks(outputDir string) error {
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		return fmt.Errorf("no generated tests found in %s. Run 'generate' command first", outputDir)
	}

	fmt.Printf("Running benchmarks on tests in: %s\n", outputDir)
	start := time.Now()

	specs := buildPatternSpecs(*count, *seed)
	stats, totalTestCases := collectStats(specs)

	testResult := runGoCommand(outputDir, "go", "test", "./...")
	benchResult := runGoCommand(outputDir, "go", "test", "-run", "^$", "-bench", ".", "-benchmem", "./...")

	printSummary(stats, len(specs), totalTestCases, outputDir, testResult, benchResult, start, specs)

	if testResult.Err != nil || benchResult.Err != nil {
		return fmt.Errorf("benchmark execution failed")
	}

	fmt.Printf("\nBenchmark completed. Tests preserved in: %s\n", outputDir)
	fmt.Printf("Use '%s -command=delete' to clean up when done\n", appName)
	return nil
}

func deleteGeneratedTests(outputDir string) error {
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		fmt.Printf("No generated tests found in %s\n", outputDir)
		return nil
	}
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to delete directory %s: %w", outputDir, err)
	}
	fmt.Printf("Deleted generated tests from %s\n", outputDir)
	return nil
}

func runGoCommand(dir string, args ...string) commandResult {
	start := time.Now()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var buffer bytes.Buffer
	cmd.Stdout = &buffer
	cmd.Stderr = &buffer

	err := cmd.Run()

	return commandResult{
		Command:  strings.Join(args, " "),
		Output:   buffer.String(),
		Duration: time.Since(start),
		Err:      err,
	}
}

// parseBenchmarkResults reads `go test -bench -benchmem` output, keyed by
// benchmark name without the GOMAXPROCS suffix.
func parseBenchmarkResults(output string) map[string]*benchmarkResult {
	results := make(map[string]*benchmarkResult)

	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "Benchmark") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}

		// Parse: BenchmarkName-12  1000  12345 ns/op  1234 B/op  12 allocs/op
		name := fields[0]
		if i := strings.LastIndexByte(name, '-'); i > 0 {
			name = name[:i]
		}

		res := &benchmarkResult{Name: name}
		for i := 2; i+1 < len(fields); i++ {
			switch fields[i+1] {
			case "ns/op":
				fmt.Sscanf(fields[i], "%f", &res.NsPerOp)
			case "B/op":
				fmt.Sscanf(fields[i], "%d", &res.BytesPerOp)
			case "allocs/op":
				fmt.Sscanf(fields[i], "%d", &res.AllocsPerOp)
			}
		}
		results[name] = res
	}
	return results
}

func analyzeBenchmarks(output string, specs []patternSpec) map[patternCategory]*benchmarkComparison {
	results := parseBenchmarkResults(output)
	comparisons := make(map[patternCategory]*benchmarkComparison)

	for _, spec := range specs {
		deriv, ok1 := results["Benchmark"+spec.Name+"MatchString"]
		std, ok2 := results["Benchmark"+spec.Name+"StdRegexp"]
		if !ok1 || !ok2 {
			continue
		}
		cmp := comparisons[spec.Category]
		if cmp == nil {
			cmp = &benchmarkComparison{Category: spec.Category}
			comparisons[spec.Category] = cmp
		}
		if deriv.NsPerOp < std.NsPerOp {
			cmp.DerivFaster++
		} else {
			cmp.StdlibFaster++
		}
		cmp.DerivAvgNs += deriv.NsPerOp
		cmp.StdlibAvgNs += std.NsPerOp
		cmp.DerivAvgBytes += float64(deriv.BytesPerOp)
		cmp.Compared++
	}

	for _, cmp := range comparisons {
		n := float64(cmp.Compared)
		cmp.DerivAvgNs /= n
		cmp.StdlibAvgNs /= n
		cmp.DerivAvgBytes /= n
	}
	return comparisons
}

func printSummary(stats map[patternCategory]*categoryStats, totalPatterns, totalTestCases int, outputDir string, testResult, benchResult commandResult, start time.Time, specs []patternSpec) {
	fmt.Println()
	fmt.Println("======== Mass Generation Summary ========")
	fmt.Printf("Artifacts directory: %s\n", outputDir)

	for _, cat := range orderedCategories {
		bucket := stats[cat]
		if bucket == nil {
			bucket = &categoryStats{}
		}
		fmt.Printf("Category %-12s -> patterns: %3d, test cases: %4d\n", cat, bucket.Patterns, bucket.TestCases)
	}
	fmt.Printf("TOTAL patterns: %d\n", totalPatterns)
	fmt.Printf("TOTAL test cases: %d\n", totalTestCases)
	fmt.Println()

	printCommandSummary(testResult)
	fmt.Println()
	printCommandSummary(benchResult)

	if benchResult.Err == nil && len(benchResult.Output) > 0 {
		fmt.Println()
		fmt.Println("======== Derivatives vs regexp ========")
		comparisons := analyzeBenchmarks(benchResult.Output, specs)
		for _, cat := range orderedCategories {
			cmp := comparisons[cat]
			if cmp == nil {
				continue
			}
			fmt.Printf("%-12s faster: %3d / %3d   avg %10.1f ns/op vs %10.1f ns/op   %8.1f B/op\n",
				cat, cmp.DerivFaster, cmp.Compared, cmp.DerivAvgNs, cmp.StdlibAvgNs, cmp.DerivAvgBytes)
		}
	}

	fmt.Println()
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
}

func printCommandSummary(result commandResult) {
	status := "PASS"
	if result.Err != nil {
		status = "FAIL"
	}
	fmt.Printf("Command: %s\n", result.Command)
	fmt.Printf("Status: %s (duration %s)\n", status, result.Duration.Round(time.Millisecond))
	if result.Err != nil {
		fmt.Printf("Error output:\n%s\n", result.Output)
	}
}

func printHelp() {
	fmt.Printf("Usage: %s [OPTIONS]\n\n", appName)
	fmt.Println("Generates matchers for random patterns and benchmarks them against regexp")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate   Generate matchers and test files")
	fmt.Println("  benchmark  Run tests and benchmarks on generated matchers")
	fmt.Println("  delete     Delete all generated files")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s -command=generate -count=50\n", appName)
	fmt.Printf("  %s -command=benchmark -count=50\n", appName)
	fmt.Printf("  %s -command=delete\n", appName)
}
