package render

import (
	"fmt"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig resolves a manifest and variant into the configuration handed
// to renderers. Variant tokens, templates and asset files override the base
// manifest; fallbacks fill partials neither declares. Every token is exposed
// as a CSS custom property named "--<token>".
func ThemeConfig(manifest *theme.Manifest, variant string, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, fmt.Errorf("render: theme manifest is required")
	}
	variant = strings.TrimSpace(variant)

	tokens := copyStrings(manifest.Tokens)
	partials := copyStrings(fallbacks)
	for key, tpl := range manifest.Templates {
		partials[key] = tpl
	}
	assets := copyStrings(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("render: theme %q has no variant %q", manifest.Name, variant)
		}
		for key, value := range v.Tokens {
			tokens[key] = value
		}
		for key, tpl := range v.Templates {
			partials[key] = tpl
		}
		for key, file := range v.Assets.Files {
			assets[key] = file
		}
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Tokens:   tokens,
		CSSVars:  cssVars,
		Partials: partials,
		AssetURL: func(key string) string {
			file, ok := assets[key]
			if !ok || file == "" {
				return ""
			}
			if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
				return file
			}
			return path.Join(prefix, file)
		},
	}, nil
}

func copyStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
