package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-formguard/internal/config"
	"github.com/goliatone/go-formguard/pkg/formspec"
	"github.com/goliatone/go-formguard/pkg/orchestrator"
	"github.com/goliatone/go-formguard/pkg/renderers/tui"
)

// app holds state shared by every subcommand.
type app struct {
	configPath string
	formsDir   string
	envFiles   []string
	presetPath string

	stdin  io.Reader
	stdout io.Writer
	logger *log.Logger

	settings *config.Settings
	options  []orchestrator.Option
}

// setup loads dotenv files, settings and form definitions.
func (a *app) setup() error {
	if err := config.LoadEnvFiles(a.envFiles...); err != nil {
		return withCode(ExitConfigError, err)
	}

	settings, err := config.LoadSettings(a.configPath)
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	if a.formsDir != "" {
		settings.FormsDir = a.formsDir
	}
	a.settings = settings

	store, err := formspec.LoadDefaults()
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	if dir := settings.FormsDir; dir != "" {
		local, err := formspec.LoadFS(os.DirFS(dir), formspec.Sanitizer())
		if err != nil {
			return withCode(ExitConfigError, fmt.Errorf("load forms from %s: %w", dir, err))
		}
		store.Overlay(local)
		a.logger.Printf("loaded %d form(s) from %s", len(local.IDs()), dir)
	}
	a.options = append(a.options[:0], orchestrator.WithStore(store))

	manifest, err := settings.Theme.Manifest()
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	if manifest != nil {
		a.options = append(a.options, orchestrator.WithThemeManifest(manifest, settings.Theme.Variant))
	}

	if a.presetPath != "" {
		data, err := os.ReadFile(a.presetPath)
		if err != nil {
			return withCode(ExitConfigError, fmt.Errorf("read preset: %w", err))
		}
		preset, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return withCode(ExitConfigError, err)
		}
		a.options = append(a.options, orchestrator.WithTransformer(preset))
	}
	return nil
}

// orchestrator builds an orchestrator from the loaded settings plus extra.
func (a *app) orchestrator(extra ...orchestrator.Option) *orchestrator.Orchestrator {
	options := make([]orchestrator.Option, 0, len(a.options)+len(extra))
	options = append(options, a.options...)
	options = append(options, extra...)
	return orchestrator.New(options...)
}

// formID falls back to the configured default form.
func (a *app) formID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if a.settings != nil {
		return a.settings.DefaultForm
	}
	return ""
}

// classify maps library errors onto exit codes.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, orchestrator.ErrFormNotFound):
		return withCode(ExitConfigError, err)
	case errors.Is(err, formspec.ErrUnknownField), errors.Is(err, tui.ErrRejected):
		return withCode(ExitDataError, err)
	default:
		return withCode(ExitError, err)
	}
}
