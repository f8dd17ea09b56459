package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DirResult is the tokenization of one file found under a directory.
type DirResult struct {
	Path   string // path relative to the walked directory
	Result *TokenizeResult
}

// listFernFiles returns a sorted list of all *.fn files under dir.
func listFernFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".fn") {
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

// TokenizeDir tokenizes every .fn file under dir concurrently. Per-file
// lexical errors land in the corresponding DirResult; only infrastructure
// failures (walking, reading) abort the whole run. Results come back ordered
// by path.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics int) ([]DirResult, error) {
	files, err := listFernFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]DirResult, len(files))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			res, err := Tokenize(path, maxDiagnostics)
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil {
				rel = path
			}
			results[i] = DirResult{Path: filepath.ToSlash(rel), Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
