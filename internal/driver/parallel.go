package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ucc/internal/ast"
	"ucc/internal/astio"
	"ucc/internal/backend/cpp"
	"ucc/internal/diag"
	"ucc/internal/sema"
	"ucc/internal/source"
	"ucc/internal/symbols"
)

// ListInputs returns all .ucast files under dir, sorted for a
// deterministic batch order.
func ListInputs(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".ucast") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// AnalyzeAll analyzes every input in paths. Decoding runs serially
// because it registers paths in the shared FileSet; analysis itself runs
// in parallel, each file against its own global environment. Result
// order matches the input order.
func AnalyzeAll(ctx context.Context, fset *source.FileSet, paths []string, opts Options) ([]*Result, error) {
	results := make([]*Result, len(paths))
	for i, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("driver: %w", err)
		}
		builder := ast.NewBuilder(0)
		prog, fileID, err := astio.Decode(f, builder, fset)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("driver: %s: %w", path, err)
		}
		results[i] = &Result{
			Path:    path,
			FileID:  fileID,
			Program: prog,
			Builder: builder,
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for _, res := range results {
		res := res
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bag := diag.NewBag(opts.maxDiagnostics())
			globals := symbols.NewGlobalEnv()
			sema.Analyze(res.Program, globals, diag.BagReporter{Bag: bag})
			bag.Sort()
			res.Globals = globals
			res.Bag = bag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// CompileAll analyzes every input and lowers each clean tree to C++.
func CompileAll(ctx context.Context, fset *source.FileSet, paths []string, opts Options) ([]*Result, error) {
	results, err := AnalyzeAll(ctx, fset, paths, opts)
	if err != nil {
		return results, err
	}
	for _, res := range results {
		if !res.Bag.HasErrors() {
			res.Output = cpp.EmitProgram(res.Program)
		}
	}
	return results, nil
}
