package formguard

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formguard/pkg/renderers/vanilla"
)

func TestEmbeddedFSContents(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "form.tmpl"); err != nil {
		t.Fatalf("expected form template: %v", err)
	}
	if _, err := fs.ReadFile(EmbeddedAssets(), vanilla.StylesheetName); err != nil {
		t.Fatalf("expected stylesheet: %v", err)
	}
	if _, err := fs.ReadFile(EmbeddedForms(), "contact.yaml"); err != nil {
		t.Fatalf("expected contact definition: %v", err)
	}
}

func TestGenerateHTMLWithValidation(t *testing.T) {
	html, err := GenerateHTML(context.Background(), "contact", map[string]string{"name": "Jo3"}, true)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.Contains(string(html), "only letters and spaces allowed") {
		t.Fatalf("expected inline error in output:\n%s", html)
	}
}

func TestCheckReportsFields(t *testing.T) {
	report, err := Check(context.Background(), "signup", map[string]string{
		"name":     "Jane Doe",
		"email":    "a@b.com",
		"phone":    "1234567890",
		"password": "Abc12345",
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.Valid || len(report.Fields) != 4 {
		t.Fatalf("unexpected report %+v", report)
	}
}
