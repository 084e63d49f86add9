package main

import (
	"fmt"
	"os"

	"github.com/atomforge/atomforge/engine"
	"github.com/atomforge/atomforge/match"
	"github.com/atomforge/atomforge/parser"
	"github.com/atomforge/atomforge/syntax"
	"gopkg.in/yaml.v3"
)

// packFile is the YAML document -packs-file reads: a list of bundled
// pack names to activate, plus ad-hoc pattern/template macros to
// register alongside them. Each macro's pattern and template are written
// as ordinary atomforge source; "_" leaves in the template are filled
// in, left to right, with whatever the pattern's own "_" wildcards
// captured at the matching site — the same cycling-substitution contract
// defmacro[pat][tpl] uses internally.
type packFile struct {
	Packs  []string    `yaml:"packs"`
	Macros []macroSpec `yaml:"macros"`
}

type macroSpec struct {
	Pattern  string `yaml:"pattern"`
	Template string `yaml:"template"`
}

// loadPackFile parses path and applies it to e: activating every named
// bundled pack, then registering every ad-hoc macro, in document order.
func loadPackFile(e *engine.Engine, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading pack file %q: %w", path, err)
	}

	var doc packFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing pack file %q: %w", path, err)
	}

	if len(doc.Packs) > 0 {
		if _, err := e.Configure(doc.Packs...); err != nil {
			return fmt.Errorf("pack file %q: %w", path, err)
		}
	}

	for i, spec := range doc.Macros {
		if err := registerMacroSpec(e, spec); err != nil {
			return fmt.Errorf("pack file %q: macro entry %d: %w", path, i, err)
		}
	}
	return nil
}

func registerMacroSpec(e *engine.Engine, spec macroSpec) error {
	pattern, err := parser.Parse(spec.Pattern)
	if err != nil {
		return fmt.Errorf("pattern %q: %w", spec.Pattern, err)
	}
	template, err := parser.Parse(spec.Template)
	if err != nil {
		return fmt.Errorf("template %q: %w", spec.Template, err)
	}

	e.Macro(pattern, func(c match.Captures) (syntax.Node, bool) {
		reps := make([]syntax.Node, len(c))
		copy(reps, c)
		return template.Substitute(match.Wildcard, reps...), true
	})
	return nil
}
