// Package codegen renders a resolved interface model as Go bindings for the jsonrpc runtime.
package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/floegence/bfapi/internal/atomicfile"
	"github.com/floegence/bfapi/resolve"
	"github.com/floegence/bfapi/schema"
)

// Generate parses, resolves and renders doc in one step.
func Generate(doc []byte, opts Options) ([]File, error) {
	m, err := schema.ParseBytes(doc)
	if err != nil {
		return nil, err
	}
	res, err := resolve.Resolve(m)
	if err != nil {
		return nil, err
	}
	return Emit(res, opts)
}

// WriteFiles writes files into dir, leaving files whose content is unchanged untouched.
// It returns the names of the files it rewrote.
func WriteFiles(dir string, files []File) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var written []string
	for _, f := range files {
		changed, err := atomicfile.WriteFile(filepath.Join(dir, f.Name), f.Content, 0o644)
		if err != nil {
			return written, fmt.Errorf("write %s: %w", f.Name, err)
		}
		if changed {
			written = append(written, f.Name)
		}
	}
	return written, nil
}
