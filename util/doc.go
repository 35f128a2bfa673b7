// Package util provides small shared helpers with no dependencies on the
// rest of the module.
package util
