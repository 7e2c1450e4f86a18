package hcl

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/plantgen/internal/catalog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the context plant attributes are evaluated in. It
// exposes the known categories as `category.<name>`, the process
// environment as `env.<NAME>` and a few string functions.
func newEvalContext() *hcl.EvalContext {
	categories := make(map[string]cty.Value, len(catalog.Categories))
	for _, c := range catalog.Categories {
		categories[c.String()] = cty.StringVal(c.String())
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"category": cty.ObjectVal(categories),
			"env":      environment(),
		},
		Functions: map[string]function.Function{
			"format":    stdlib.FormatFunc,
			"lower":     stdlib.LowerFunc,
			"upper":     stdlib.UpperFunc,
			"title":     stdlib.TitleFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}

func environment() cty.Value {
	vars := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		if name, value, ok := strings.Cut(e, "="); ok && name != "" {
			vars[name] = cty.StringVal(value)
		}
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}
