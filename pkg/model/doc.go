// Package model defines the typed form definitions shared by the validator
// wiring, the renderers and the schema exporter. A FormModel lists its fields
// in display order; each Field carries declarative rule specs that resolve
// against a rules.Catalog. Element ids follow one convention everywhere: the
// input id is the field name, its error element is "<name>-error", and the
// form status message lives in SummaryID.
package model
