// Package testsupport holds fixtures shared by package tests.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/goliatone/go-formguard/pkg/formspec"
	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/validator"
)

// MustLoadStore loads the embedded form definitions.
func MustLoadStore(t *testing.T) *formspec.Store {
	t.Helper()

	store, err := formspec.LoadDefaults()
	if err != nil {
		t.Fatalf("load default forms: %v", err)
	}
	return store
}

// MustLoadForm returns one embedded form definition by id.
func MustLoadForm(t *testing.T, id string) model.FormModel {
	t.Helper()

	form, ok := MustLoadStore(t).Form(id)
	if !ok {
		t.Fatalf("form %q not found", id)
	}
	return form
}

// MustMount mounts an embedded form on a fresh in-memory document using the
// default rule catalog.
func MustMount(t *testing.T, id string, options ...validator.Option) *formspec.Mounted {
	t.Helper()

	mounted, err := formspec.Mount(MustLoadForm(t, id), nil, options...)
	if err != nil {
		t.Fatalf("mount form %q: %v", id, err)
	}
	return mounted
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
