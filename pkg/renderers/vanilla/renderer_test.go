package vanilla_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formguard/pkg/render"
	"github.com/goliatone/go-formguard/pkg/renderers/vanilla"
	"github.com/goliatone/go-formguard/pkg/testsupport"
	"github.com/goliatone/go-formguard/pkg/validator"
)

func renderForm(t *testing.T, id string, opts render.RenderOptions, options ...vanilla.Option) string {
	t.Helper()

	renderer, err := vanilla.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(testsupport.Context(), testsupport.MustLoadForm(t, id), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(output)
}

func assertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, output)
		}
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderer_RendersFieldsAndHiddenFeedback(t *testing.T) {
	output := renderForm(t, "contact", render.RenderOptions{})

	assertContains(t, output,
		`<form id="contact"`,
		`<h2>Get in touch</h2>`,
		`<input type="text" id="name" name="name" value=""`,
		`<input type="email" id="email" name="email" value=""`,
		`<textarea id="message" name="message"`,
		`<p id="name-error" class="formguard-error" role="alert" hidden></p>`,
		`<p id="form-status" class="formguard-status" role="status" hidden></p>`,
		`<button type="submit">Send message</button>`,
	)
	if strings.Contains(output, `aria-invalid="true"`) {
		t.Fatalf("fresh form must not be marked invalid\n%s", output)
	}
}

func TestRenderer_RendersErrorsAndSummary(t *testing.T) {
	output := renderForm(t, "contact", render.RenderOptions{
		Values: map[string]string{"name": "Jo3", "email": "a@b.com"},
		Errors: map[string][]string{"name": {"only letters and spaces allowed"}},
		Summary: &render.Summary{
			Text: "Please correct the errors in the form.",
			Tone: validator.ToneError,
		},
	})

	assertContains(t, output,
		`value="Jo3"`,
		`aria-invalid="true" class="invalid"`,
		`<p id="name-error" class="formguard-error" role="alert">only letters and spaces allowed</p>`,
		`value="a@b.com"`,
		`<p id="email-error" class="formguard-error" role="alert" hidden></p>`,
		`<p id="form-status" class="formguard-status error" role="status">Please correct the errors in the form.</p>`,
	)
}

func TestRenderer_NeverEchoesPasswords(t *testing.T) {
	output := renderForm(t, "signup", render.RenderOptions{
		Values: map[string]string{"password": "Abc12345"},
	})
	if strings.Contains(output, "Abc12345") {
		t.Fatalf("password value leaked into markup\n%s", output)
	}
	assertContains(t, output,
		`<input type="password" id="password" name="password" value=""`,
		`<input type="tel" id="phone" name="phone"`,
		`aria-describedby="phone-hint phone-error"`,
	)
}

func TestRenderer_EscapesValues(t *testing.T) {
	output := renderForm(t, "contact", render.RenderOptions{
		Values: map[string]string{"name": `"><script>alert(1)</script>`},
	})
	if strings.Contains(output, "<script>") {
		t.Fatalf("value was not escaped\n%s", output)
	}
}

func TestRenderer_HiddenFieldsSorted(t *testing.T) {
	output := renderForm(t, "contact", render.RenderOptions{
		Hidden: render.MergeHiddenFields(nil,
			render.CSRFToken("", "tok"),
			render.Hidden("source", "footer"),
		),
	})

	csrf := strings.Index(output, `name="_csrf" value="tok"`)
	source := strings.Index(output, `name="source" value="footer"`)
	if csrf < 0 || source < 0 {
		t.Fatalf("hidden fields missing\n%s", output)
	}
	if csrf > source {
		t.Fatalf("hidden fields not sorted by name\n%s", output)
	}
}

func TestRenderer_ThemeVariablesAndStylesheet(t *testing.T) {
	cfg, err := render.ThemeConfig(&theme.Manifest{
		Name:   "acme",
		Tokens: map[string]string{"color-error": "#b00020"},
		Assets: theme.Assets{
			Prefix: "/assets/acme",
			Files:  map[string]string{"stylesheet": "form.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"color-text": "#f0f0f0"}},
		},
	}, "dark", nil)
	if err != nil {
		t.Fatalf("theme config: %v", err)
	}

	output := renderForm(t, "contact", render.RenderOptions{Theme: cfg}, vanilla.WithStylesheet("/static/site.css"))
	assertContains(t, output,
		`<link rel="stylesheet" href="/static/site.css">`,
		`<link rel="stylesheet" href="/assets/acme/form.css">`,
		`data-theme="acme" data-variant="dark"`,
		`style="--color-error: #b00020; --color-text: #f0f0f0;"`,
	)
}

func TestRenderer_DefaultStylesInlined(t *testing.T) {
	output := renderForm(t, "contact", render.RenderOptions{}, vanilla.WithDefaultStyles())
	assertContains(t, output, "<style>", ".formguard-form {")
}

func TestRenderer_ThemePartialOverridesTemplate(t *testing.T) {
	files := fstest.MapFS{
		"compact.tmpl": {Data: []byte(`{% for field in fields %}[{{ field.name }}]{% endfor %}`)},
	}
	renderer, err := vanilla.New(vanilla.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), testsupport.MustLoadForm(t, "contact"), render.RenderOptions{
		Theme: &theme.RendererConfig{Partials: map[string]string{"form": "compact"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(output); got != "[name][email][message]" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderer_RespectsCancelledContext(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, testsupport.MustLoadForm(t, "contact"), render.RenderOptions{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRenderer_RendersMountedState(t *testing.T) {
	mounted := testsupport.MustMount(t, "contact")
	if err := mounted.Fill(map[string]string{"name": "Jo3", "email": "a@b.com", "message": "short"}); err != nil {
		t.Fatalf("fill: %v", err)
	}
	mounted.Document.Submit()

	text, tone, visible := mounted.Summary()
	if !visible {
		t.Fatal("expected summary to be visible after a blocked submit")
	}
	opts := render.FromState(mounted.Form, mounted.Validator.State(), &render.Summary{Text: text, Tone: tone})

	output := renderForm(t, "contact", opts)
	assertContains(t, output,
		`only letters and spaces allowed`,
		`please enter 10+ characters`,
		`class="formguard-status error"`,
	)
}
