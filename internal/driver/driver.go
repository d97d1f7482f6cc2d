// Package driver ties the pipeline together: it decodes .ucast inputs,
// runs semantic analysis, and lowers clean trees to C++ text.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ucc/internal/ast"
	"ucc/internal/astio"
	"ucc/internal/backend/cpp"
	"ucc/internal/diag"
	"ucc/internal/sema"
	"ucc/internal/source"
	"ucc/internal/symbols"
)

// DefaultMaxDiagnostics bounds the diagnostics kept per file.
const DefaultMaxDiagnostics = 256

type Options struct {
	// MaxDiagnostics caps the diagnostics collected per file;
	// zero means DefaultMaxDiagnostics.
	MaxDiagnostics int
	// Jobs bounds batch parallelism; zero means GOMAXPROCS.
	Jobs int
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// Result is the outcome of processing one input file.
type Result struct {
	// Path is the .ucast input path.
	Path string
	// FileID identifies the recorded source file within the FileSet.
	FileID source.FileID
	// Program is the decoded and analyzed tree.
	Program *ast.Program
	// Builder owns the tree's nodes.
	Builder *ast.Builder
	// Globals is the populated global environment.
	Globals *symbols.GlobalEnv
	// Bag holds the diagnostics of all phases, in sorted order.
	Bag *diag.Bag
	// Output is the generated C++ text; empty until code generation runs.
	Output string
}

// AnalyzeFile decodes the .ucast file at path and runs all semantic
// phases over it. Analysis diagnostics land in the result's Bag; the
// returned error covers I/O and malformed payloads only.
func AnalyzeFile(fset *source.FileSet, path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	defer f.Close()

	builder := ast.NewBuilder(0)
	prog, fileID, err := astio.Decode(f, builder, fset)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(opts.maxDiagnostics())
	globals := symbols.NewGlobalEnv()
	sema.Analyze(prog, globals, diag.BagReporter{Bag: bag})
	bag.Sort()

	return &Result{
		Path:    path,
		FileID:  fileID,
		Program: prog,
		Builder: builder,
		Globals: globals,
		Bag:     bag,
	}, nil
}

// CompileFile analyzes path and, when analysis produced no errors,
// lowers the tree to C++ and fills in the result's Output.
func CompileFile(fset *source.FileSet, path string, opts Options) (*Result, error) {
	res, err := AnalyzeFile(fset, path, opts)
	if err != nil {
		return nil, err
	}
	if !res.Bag.HasErrors() {
		res.Output = cpp.EmitProgram(res.Program)
	}
	return res, nil
}

// OutputPath derives the generated file path for an input: the .ucast
// suffix is replaced with .cpp, and the file is placed in outDir when
// outDir is non-empty.
func OutputPath(outDir, input string) string {
	base := strings.TrimSuffix(filepath.Base(input), ".ucast") + ".cpp"
	if outDir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(outDir, base)
}
