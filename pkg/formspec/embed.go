package formspec

import (
	"embed"
	"io/fs"
)

//go:embed forms/*
var embeddedForms embed.FS

// EmbeddedFS returns the bundled form definitions (contact and signup).
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedForms, "forms")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// LoadDefaults loads the bundled definitions.
func LoadDefaults() (*Store, error) {
	return LoadFS(EmbeddedFS(), Sanitizer())
}
