package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formguard/pkg/render"
)

// manifestSelector serves one manifest regardless of the requested name.
type manifestSelector struct {
	manifest *theme.Manifest
}

func (s manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("orchestrator: theme %q not found", name)
	}
	return &theme.Selection{
		Theme:    s.manifest.Name,
		Variant:  variant,
		Manifest: s.manifest,
	}, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = o.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = o.defaultVariant
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}

	cfg, err := render.ThemeConfig(selection.Manifest, selection.Variant, o.themeFallbacks)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	if selection.Theme != "" {
		cfg.Theme = selection.Theme
	}
	return cfg, nil
}
