package idlcheck

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/floegence/bfapi/codegen"
	"github.com/floegence/bfapi/idl"
)

const sportsBindingsDir = "../../gen/sports/v1"

func TestSportsBindings_MatchGenerator(t *testing.T) {
	files, err := codegen.Generate(idl.SportsAPING, codegen.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 generated files, got %d", len(files))
	}
	for _, f := range files {
		committed, err := os.ReadFile(filepath.Join(sportsBindingsDir, f.Name))
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		if bytes.Equal(committed, f.Content) {
			continue
		}
		line, want, got := firstDiff(f.Content, committed)
		t.Fatalf("%s is stale at line %d (run bfapi generate --out gen/sports/v1 --overwrite)\nwant: %q\ngot:  %q", f.Name, line, want, got)
	}
}

func firstDiff(want, got []byte) (int, string, string) {
	wl := bytes.Split(want, []byte("\n"))
	gl := bytes.Split(got, []byte("\n"))
	for i := 0; i < len(wl) || i < len(gl); i++ {
		var w, g []byte
		if i < len(wl) {
			w = wl[i]
		}
		if i < len(gl) {
			g = gl[i]
		}
		if !bytes.Equal(w, g) || i >= len(wl) || i >= len(gl) {
			return i + 1, string(w), string(g)
		}
	}
	return 0, "", ""
}
