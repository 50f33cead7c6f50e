// Package render defines the Renderer contract shared by the HTML and
// terminal front ends, a name-keyed Registry, and helpers that turn validator
// state, hidden fields and go-theme manifests into RenderOptions.
package render
