// Package saved keeps labelled measurements. Values are validated with the
// imperial parser and stored in canonical reduced form.
package saved
