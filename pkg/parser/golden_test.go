package parser

import (
	"bytes"
	"path"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/rtmath/crom/internal/ast"
	"github.com/rtmath/crom/internal/config"
	"github.com/rtmath/crom/internal/diag"
)

// TestGoldenCases walks testdata/cases.txtar, a NAME.crom/NAME.want
// pair per case, parsing each source and checking the Kind of its
// first top-level statement. On mismatch the full tree is rendered
// through internal/ast.Print so the failure shows the whole shape
// BuildAST produced, not just the wrong leaf.
func TestGoldenCases(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/cases.txtar")
	if err != nil {
		t.Fatalf("reading testdata/cases.txtar: %v", err)
	}

	sources := map[string]string{}
	wants := map[string]string{}
	for _, f := range archive.Files {
		name := path.Base(f.Name)
		switch {
		case strings.HasSuffix(name, ".crom"):
			sources[strings.TrimSuffix(name, ".crom")] = string(f.Data)
		case strings.HasSuffix(name, ".want"):
			wants[strings.TrimSuffix(name, ".want")] = strings.TrimSpace(string(f.Data))
		}
	}

	if len(sources) == 0 {
		t.Fatalf("no cases found in testdata/cases.txtar")
	}

	for name, src := range sources {
		want, ok := wants[name]
		if !ok {
			t.Fatalf("case %q has a .crom file but no matching .want file", name)
		}

		t.Run(name, func(t *testing.T) {
			sink := diag.NewSink(&bytes.Buffer{})
			p := New(name+".crom", src, config.Default(), sink)
			root, _ := p.Parse()

			if sink.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", sink.Diagnostics())
			}

			got := root.Left().Kind.String()
			if got != want {
				var buf bytes.Buffer
				ast.Print(&buf, root)
				t.Fatalf("case %q: got %s, want %s\nfull tree:\n%s", name, got, want, buf.String())
			}
		})
	}
}
