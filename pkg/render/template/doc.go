// Package template wraps a pongo2 template set behind the small contract the
// HTML renderer needs: named templates loaded from an fs.FS, inline template
// strings, shared globals and custom filters.
package template
