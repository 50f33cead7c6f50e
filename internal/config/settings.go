package config

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Settings drive the formguard CLI.
type Settings struct {
	// FormsDir holds extra form definitions overlaid on the built-in ones.
	FormsDir     string        `mapstructure:"forms_dir"`
	DefaultForm  string        `mapstructure:"default_form"`
	OutputFormat string        `mapstructure:"output_format"`
	Theme        ThemeSettings `mapstructure:"theme"`
}

// ThemeSettings describe the theme applied to HTML output.
type ThemeSettings struct {
	Name     string                       `mapstructure:"name"`
	Variant  string                       `mapstructure:"variant"`
	Tokens   map[string]string            `mapstructure:"tokens"`
	Assets   map[string]string            `mapstructure:"assets"`
	Prefix   string                       `mapstructure:"asset_prefix"`
	Variants map[string]map[string]string `mapstructure:"variants"`
}

// Defaults returns the baseline values for every Settings key.
func Defaults() map[string]any {
	return map[string]any{
		"forms_dir":          "",
		"default_form":       "contact",
		"output_format":      "json",
		"theme.name":         "",
		"theme.variant":      "",
		"theme.asset_prefix": "",
	}
}

// LoadSettings reads Settings from path, falling back to defaults and
// FORMGUARD_* environment variables.
func LoadSettings(path string) (*Settings, error) {
	settings, err := Load[Settings](path, Defaults())
	if err != nil {
		return nil, err
	}
	settings.DefaultForm = strings.TrimSpace(settings.DefaultForm)
	settings.OutputFormat = strings.TrimSpace(settings.OutputFormat)
	return settings, nil
}

// Manifest converts the theme settings into a go-theme manifest. It returns
// nil when no theme is named.
func (t ThemeSettings) Manifest() (*theme.Manifest, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return nil, nil
	}
	manifest := &theme.Manifest{
		Name:    name,
		Version: "1.0.0",
		Tokens:  t.Tokens,
		Assets: theme.Assets{
			Prefix: t.Prefix,
			Files:  t.Assets,
		},
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for variant, tokens := range t.Variants {
			manifest.Variants[variant] = theme.Variant{Tokens: tokens}
		}
	}
	if variant := strings.TrimSpace(t.Variant); variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("config: theme %q has no variant %q", name, variant)
		}
	}
	return manifest, nil
}
