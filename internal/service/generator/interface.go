// Package generator provides interfaces for short code generation.
package generator

// Generator defines a set of methods for types implementing Generator.
type Generator interface {
	Generate() (string, error)
}
