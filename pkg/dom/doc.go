// Package dom is the in-memory host UI tree the validator attaches to. It
// stands in for a browser document: elements are addressed by stable ids,
// typing into an input fires its listeners synchronously, and a submit event
// records whether its default action was prevented. The terminal session and
// the HTML renderer both drive forms through a Document.
package dom
