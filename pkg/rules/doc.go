// Package rules defines the pure predicates used to validate form input.
//
// A Rule pairs a predicate with a failure message. Values are trimmed before
// the predicate runs and empty input always fails, so a pattern such as
// `^\s*$` can never accept a blank field. Built-in rules cover the name, email,
// phone, password and free-text fields of the contact and signup forms; the
// Catalog lets form definition files reference them by name or declare new
// ones through Spec:
//
//	rules:
//	  - name
//	  - minLength: 2
//	  - pattern: "^[A-Z]"
//	    message: "start with a capital letter"
//	  - password:
//	      minLength: 12
//	      requireSpecial: true
//	    message: "use 12+ characters including a symbol"
package rules
