package report

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// resolvedTheme is the slice of a go-theme selection the report renderer
// consumes: resolved tokens as CSS custom properties plus an optional
// stylesheet URL.
type resolvedTheme struct {
	Name       string
	Variant    string
	CSSVars    map[string]string
	Stylesheet string
}

// resolveTheme asks the selector for the named theme/variant and flattens the
// manifest into renderer inputs. Variant tokens override base tokens; asset
// paths resolve against the manifest prefix.
func resolveTheme(selector theme.ThemeSelector, name, variant string) (resolvedTheme, error) {
	if selector == nil {
		return resolvedTheme{}, nil
	}

	selection, err := selector.Select(name, variant)
	if err != nil {
		return resolvedTheme{}, fmt.Errorf("report: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return resolvedTheme{}, nil
	}

	manifest := selection.Manifest
	tokens := mergeTokens(manifest.Tokens, variantTokens(manifest, selection.Variant))

	resolved := resolvedTheme{
		Name:    selection.Theme,
		Variant: selection.Variant,
		CSSVars: cssVarsFromTokens(tokens),
	}
	resolved.Stylesheet = assetURL(manifest, selection.Variant, "report.stylesheet")
	return resolved, nil
}

func variantTokens(manifest *theme.Manifest, variant string) map[string]string {
	if manifest == nil || variant == "" {
		return nil
	}
	v, ok := manifest.Variants[variant]
	if !ok {
		return nil
	}
	return v.Tokens
}

func mergeTokens(base, overrides map[string]string) map[string]string {
	if len(base) == 0 && len(overrides) == 0 {
		return nil
	}
	merged := make(map[string]string, len(base)+len(overrides))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}

func cssVarsFromTokens(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		vars[name] = value
	}
	return vars
}

// cssVarsStyle renders the vars as an inline style declaration in sorted
// order for deterministic output.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s;", name, vars[name]))
	}
	return strings.Join(parts, " ")
}

func assetURL(manifest *theme.Manifest, variant, key string) string {
	if manifest == nil {
		return ""
	}

	file := manifest.Assets.Files[key]
	if variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			if override, ok := v.Assets.Files[key]; ok {
				file = override
			}
		}
	}
	if file == "" {
		return ""
	}

	prefix := strings.TrimRight(manifest.Assets.Prefix, "/")
	if prefix == "" {
		return file
	}
	return prefix + "/" + strings.TrimLeft(file, "/")
}
