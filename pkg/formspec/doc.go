// Package formspec loads form definitions from JSON or YAML files and wires
// them to a validator.
//
// Definition files map form ids to forms:
//
//	forms:
//	  contact:
//	    title: Get in touch
//	    fields:
//	      - name: email
//	        type: email
//	        rules: [email]
//
// LoadDefaults returns the bundled contact and signup forms. Mount builds the
// in-memory document for a form, registers its fields and attaches the
// input/submit handlers in one step.
package formspec
