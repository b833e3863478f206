// Command ecsgen writes the fixed-arity helpers of package ecs:
// arity_generated.go (sets, add/set/remove overloads) and
// query_generated.go (typed queries and chunks).
package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/imports"
)

func main() {
	dir := flag.String("dir", ".", "Directory of the ecs package.")
	maxArity := flag.Int("max-arity", 10, "Largest arity of the add/set/remove overloads.")
	maxQueryArity := flag.Int("max-query-arity", 5, "Largest arity of the typed queries.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	outputs := []struct {
		name  string
		tmpl  *template.Template
		first int
		last  int
	}{
		{"arity_generated.go", arityTemplate, 2, *maxArity},
		{"query_generated.go", queryTemplate, 1, *maxQueryArity},
	}
	for _, out := range outputs {
		path := filepath.Join(*dir, out.name)
		if err := generate(path, out.tmpl, arities(out.first, out.last)); err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("generation failed")
		}
		log.Info().Str("file", path).Msg("generated")
	}
}

// arity describes one overload: N type parameters named T1..TN.
type arity struct {
	N int
}

func arities(first, last int) []arity {
	out := make([]arity, 0, last-first+1)
	for n := first; n <= last; n++ {
		out = append(out, arity{N: n})
	}
	return out
}

// Seq returns 1..N.
func (a arity) Seq() []int {
	seq := make([]int, a.N)
	for i := range seq {
		seq[i] = i + 1
	}
	return seq
}

// Join renders format once per index, replacing every '#' with the index.
func (a arity) Join(format, sep string) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = strings.ReplaceAll(format, "#", strconv.Itoa(i+1))
	}
	return strings.Join(parts, sep)
}

// TypeParams renders "T1, T2 any".
func (a arity) TypeParams() string {
	return a.Join("T#", ", ") + " any"
}

// TypeArgs renders "T1, T2".
func (a arity) TypeArgs() string {
	return a.Join("T#", ", ")
}

// ComponentTypes renders "ComponentTypeOf[T1](), ComponentTypeOf[T2]()".
func (a arity) ComponentTypes() string {
	return a.Join("ComponentTypeOf[T#]()", ", ")
}

// TagTypes renders "TagTypeOf[T1](), TagTypeOf[T2]()".
func (a arity) TagTypes() string {
	return a.Join("TagTypeOf[T#]()", ", ")
}

// Params renders "c1 T1, c2 T2".
func (a arity) Params() string {
	return a.Join("c# T#", ", ")
}

// PointerArgs renders "*T1, *T2".
func (a arity) PointerArgs() string {
	return a.Join("*T#", ", ")
}

func generate(path string, tmpl *template.Template, data []arity) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return eris.Wrap(err, "failed to execute template")
	}
	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return eris.Wrap(err, "failed to format generated source")
	}
	return os.WriteFile(path, src, 0o644)
}
