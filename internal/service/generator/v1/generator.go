// Package generator provides random URL-safe short codes.
package generator

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/danilovkiri/dk_go_shortlinks/internal/service/generator"
)

// CodeLength is the length of every generated code.
const CodeLength = 7

// Check interface implementation explicitly
var (
	_ generator.Generator = (*Generator)(nil)
)

// Generator produces nanoid codes over the A-Za-z0-9_- alphabet. Codes are not
// checked for uniqueness here; the storage rejects duplicates.
type Generator struct {
	length int
}

// NewGeneratorService initializes a generator producing CodeLength-long codes.
func NewGeneratorService() *Generator {
	return &Generator{length: CodeLength}
}

// Generate returns a fresh random code.
func (g *Generator) Generate() (string, error) {
	return gonanoid.New(g.length)
}
