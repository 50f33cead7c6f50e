package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/rules"
)

func TestCloneIsDeep(t *testing.T) {
	form := FormModel{
		ID:       "contact",
		Metadata: map[string]string{"owner": "site"},
		Fields: []Field{{
			Name:     "name",
			Rules:    []rules.Spec{{Use: "name"}},
			Metadata: map[string]string{"autocomplete": "name"},
		}},
	}
	clone := form.Clone()
	if diff := cmp.Diff(form, clone); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	clone.Metadata["owner"] = "other"
	clone.Fields[0].Label = "Changed"
	clone.Fields[0].Rules[0].Use = "email"
	clone.Fields[0].Metadata["autocomplete"] = "off"

	if form.Metadata["owner"] != "site" || form.Fields[0].Label != "" ||
		form.Fields[0].Rules[0].Use != "name" || form.Fields[0].Metadata["autocomplete"] != "name" {
		t.Fatalf("original mutated through clone: %+v", form)
	}
}

func TestFieldLookupAndLabel(t *testing.T) {
	form := FormModel{Fields: []Field{{Name: "email", Label: " Email "}, {Name: "phone"}}}
	field, ok := form.Field("phone")
	if !ok || field.DisplayLabel() != "phone" {
		t.Fatalf("unexpected field %+v", field)
	}
	if _, ok := form.Field("zip"); ok {
		t.Fatal("unknown field resolved")
	}
	if got := form.Fields[0].DisplayLabel(); got != "Email" {
		t.Fatalf("label not trimmed: %q", got)
	}
}

func TestFieldTypeValid(t *testing.T) {
	for _, ft := range []FieldType{FieldTypeText, FieldTypeEmail, FieldTypeTel, FieldTypePassword, FieldTypeTextarea} {
		if !ft.Valid() {
			t.Fatalf("%s should be valid", ft)
		}
	}
	if FieldType("date").Valid() {
		t.Fatal("date is not supported")
	}
}

func TestApplyStopsOnError(t *testing.T) {
	var order []string
	boom := errors.New("boom")
	err := Apply(&FormModel{},
		DecoratorFunc(func(*FormModel) error { order = append(order, "first"); return nil }),
		nil,
		DecoratorFunc(func(*FormModel) error { order = append(order, "second"); return boom }),
		DecoratorFunc(func(*FormModel) error { order = append(order, "third"); return nil }),
	)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}
