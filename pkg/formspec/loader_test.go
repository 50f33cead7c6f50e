package formspec

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/model"
	"github.com/goliatone/go-formguard/pkg/rules"
)

func TestLoadDefaults(t *testing.T) {
	store, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if diff := cmp.Diff([]string{"contact", "signup"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	signup, ok := store.Form("signup")
	if !ok {
		t.Fatal("signup missing")
	}
	names := make([]string, 0, len(signup.Fields))
	for _, f := range signup.Fields {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"name", "email", "phone", "password"}, names); diff != "" {
		t.Fatalf("signup fields mismatch (-want +got):\n%s", diff)
	}
	if signup.ID != "signup" {
		t.Fatalf("id not populated from key, got %q", signup.ID)
	}
}

func TestLoadFSMixedFormats(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`{"forms": {"newsletter": {"fields": [{"name": "email", "type": "email", "rules": ["email"]}]}}}`)},
		"nested/b.yml": {Data: []byte(`forms:
  feedback:
    fields:
      - name: comment
        rules:
          - minLength: 5
            message: say a little more
`)},
		"README.md": {Data: []byte("ignored")},
	}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if diff := cmp.Diff([]string{"feedback", "newsletter"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	feedback, _ := store.Form("feedback")
	want := model.Field{
		Name:  "comment",
		Type:  model.FieldTypeText,
		Rules: []rules.Spec{{MinLength: 5, Message: "say a little more"}},
	}
	if diff := cmp.Diff(want, feedback.Fields[0]); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFSErrors(t *testing.T) {
	cases := map[string]struct {
		files fstest.MapFS
		want  string
	}{
		"empty file": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("  \n")}},
			want:  "is empty",
		},
		"bad yaml": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms: [")}},
			want:  "parse a.yaml",
		},
		"duplicate form": {
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: a\n        rules: [name]\n")},
				"b.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: a\n        rules: [name]\n")},
			},
			want: `duplicate form "x"`,
		},
		"no fields": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  x:\n    title: Empty\n")}},
			want:  "has no fields",
		},
		"empty field name": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: ' '\n        rules: [name]\n")}},
			want:  "has no name",
		},
		"duplicate field": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: a\n        rules: [name]\n      - name: a\n        rules: [name]\n")}},
			want:  `duplicate field "a"`,
		},
		"unknown type": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: a\n        type: date\n        rules: [name]\n")}},
			want:  `unknown type "date"`,
		},
		"no rules": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: a\n")}},
			want:  "has no rules",
		},
		"field named like the status element": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: form-status\n        rules: [name]\n")}},
			want:  `field "form-status" collides with the form status element`,
		},
		"field named like a sibling error element": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  x:\n    fields:\n      - name: email-error\n        rules: [name]\n      - name: email\n        rules: [email]\n")}},
			want:  `field "email-error" collides with the error element of "email"`,
		},
		"mismatched id": {
			files: fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  x:\n    id: y\n    fields:\n      - name: a\n        rules: [name]\n")}},
			want:  "mismatched id",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFS(tc.files)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestStoreFormReturnsCopy(t *testing.T) {
	store, err := LoadDefaults()
	if err != nil {
		t.Fatal(err)
	}
	form, _ := store.Form("contact")
	form.Fields[0].Label = "Changed"
	form.Fields[0].Rules[0] = rules.Spec{Use: "phone"}

	again, _ := store.Form("contact")
	if again.Fields[0].Label == "Changed" || again.Fields[0].Rules[0].Use != "name" {
		t.Fatal("store form was mutated through a returned copy")
	}
}

func TestOverlayReplacesByID(t *testing.T) {
	base, _ := LoadDefaults()
	local, err := LoadFS(fstest.MapFS{
		"contact.yaml": {Data: []byte("forms:\n  contact:\n    title: Local\n    fields:\n      - name: name\n        rules: [name]\n")},
	})
	if err != nil {
		t.Fatal(err)
	}
	base.Overlay(local)

	contact, _ := base.Form("contact")
	if contact.Title != "Local" || len(contact.Fields) != 1 {
		t.Fatalf("overlay did not replace contact: %+v", contact)
	}
	if _, ok := base.Form("signup"); !ok {
		t.Fatal("overlay dropped signup")
	}
}

func TestSanitizerStripsMarkup(t *testing.T) {
	fsys := fstest.MapFS{"a.yaml": {Data: []byte(`forms:
  x:
    title: "<b>Hello</b> & welcome"
    fields:
      - name: a
        label: "<script>alert(1)</script>Name"
        description: "Use <em>letters</em> only"
        rules:
          - use: name
            message: "<i>letters</i> please"
`)}}

	store, err := LoadFS(fsys, Sanitizer())
	if err != nil {
		t.Fatal(err)
	}
	form, _ := store.Form("x")
	got := []string{form.Title, form.Fields[0].Label, form.Fields[0].Description, form.Fields[0].Rules[0].Message}
	want := []string{"Hello & welcome", "Name", "Use letters only", "letters please"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sanitized text mismatch (-want +got):\n%s", diff)
	}
}
