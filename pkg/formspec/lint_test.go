package formspec

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLintEmbeddedFormsAreClean(t *testing.T) {
	violations, err := Lint(EmbeddedFS(), nil)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestLintCollectsEveryProblem(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte(`forms:
  profile:
    fields:
      - name: handle
        rules: [username]
      - name: phone
        type: tel
        default: "555"
        rules: [phone]
`)},
		"b.yaml": {Data: []byte(`forms:
  profile:
    fields:
      - name: x
        rules: [name]
  empty:
    title: Nothing here
`)},
		"c.json": {Data: []byte(`{"forms": `)},
	}

	violations, err := Lint(fsys, nil)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}

	got := make([]string, 0, len(violations))
	for _, v := range violations {
		got = append(got, v.File+" "+v.Location)
	}
	want := []string{
		"a.yaml forms.profile.fields.handle",
		"a.yaml forms.profile.fields.phone.default",
		"b.yaml forms.empty",
		"b.yaml forms.profile",
		"c.json document",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}

	if msg := violations[1].Message; msg != `default "555" fails its rules: phone number must be 10–15 digits` {
		t.Fatalf("unexpected default message %q", msg)
	}
	if msg := violations[3].Message; msg != `form "profile" already defined in a.yaml` {
		t.Fatalf("unexpected duplicate message %q", msg)
	}
}

func TestLintReportsElementIDCollisions(t *testing.T) {
	fsys := fstest.MapFS{"c.yaml": {Data: []byte(`forms:
  c:
    fields:
      - name: email
        rules: [email]
      - name: email-error
        rules: [name]
`)}}

	violations, err := Lint(fsys, nil)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	want := []Violation{{
		File:     "c.yaml",
		Location: "forms.c",
		Message:  `form "c" (file c.yaml) field "email-error" collides with the error element of "email"`,
	}}
	if diff := cmp.Diff(want, violations); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}
