package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formguard/pkg/formspec"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/renderers/vanilla"
	"github.com/goliatone/go-formguard/pkg/rules"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithStore supplies the form definitions. Defaults to the embedded forms.
func WithStore(store *formspec.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithCatalog compiles rules against catalog instead of the default.
func WithCatalog(catalog *rules.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = catalog
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that runs before decorators.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators applied to every form before use.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithThemeSelector resolves theme and variant names for each request.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeManifest serves a single manifest as the default theme.
func WithThemeManifest(manifest *theme.Manifest, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if manifest == nil {
			return
		}
		o.themeSelector = manifestSelector{manifest: manifest}
		o.defaultTheme = manifest.Name
		o.defaultVariant = defaultVariant
	}
}

// WithThemeFallbacks supplies partials used when the theme omits them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// Orchestrator turns requests naming a stored form into rendered output and
// validation reports.
type Orchestrator struct {
	store           *formspec.Store
	catalog         *rules.Catalog
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	decorators      []model.Decorator
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	themeFallbacks  map[string]string
	initialiseErr   error
}

// New constructs an Orchestrator. Missing dependencies fall back to the
// embedded forms, the default rule catalog and a registry holding the
// vanilla renderer.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// FormID selects the stored form.
	FormID string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Values are typed into the form. With Validate set they are also
	// submitted so inline errors and the summary reflect them.
	Values   map[string]string
	Validate bool

	// ThemeName and ThemeVariant override the default theme selection.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries hidden fields and other per-request data. Values,
	// errors and summary computed by the validation pass take precedence.
	RenderOptions render.RenderOptions
}

// Forms lists the ids of the available forms.
func (o *Orchestrator) Forms() []string {
	if o.store == nil {
		return nil
	}
	return o.store.IDs()
}

// Form returns the named form after transformers and decorators run.
func (o *Orchestrator) Form(ctx context.Context, id string) (model.FormModel, error) {
	if err := o.initialiseErr; err != nil {
		return model.FormModel{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return model.FormModel{}, errors.New("orchestrator: form id is required")
	}
	form, ok := o.store.Form(id)
	if !ok {
		return model.FormModel{}, fmt.Errorf("orchestrator: %w: %q (available: %s)", ErrFormNotFound, id, strings.Join(o.store.IDs(), ", "))
	}
	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &form); err != nil {
			return model.FormModel{}, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}
	if err := model.Apply(&form, o.decorators...); err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: decorate form: %w", err)
	}
	return form, nil
}

// Catalog returns the rule catalog forms are compiled against.
func (o *Orchestrator) Catalog() *rules.Catalog {
	return o.catalog
}

// Generate resolves the form, runs the optional validation pass, resolves
// the theme and renders.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	form, err := o.Form(ctx, req.FormID)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if len(req.Values) > 0 {
		opts.Values = req.Values
	}
	if req.Validate {
		report, err := o.evaluate(form, req.Values)
		if err != nil {
			return nil, err
		}
		opts.Values = report.values
		opts.Errors = report.errors
		opts.Summary = report.summary
	}

	cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, err
	}
	if cfg != nil && opts.Theme == nil {
		opts.Theme = cfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	output, err := renderer.Render(ctx, form, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.store == nil {
		store, err := formspec.LoadDefaults()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load forms: %w", err)
			return
		}
		o.store = store
	}
	if o.catalog == nil {
		o.catalog = rules.DefaultCatalog()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
