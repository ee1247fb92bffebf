package customanalyzer

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOsExitInMainAnalyzer(t *testing.T) {
	// applies OsExitInMainAnalyzer to the packages under testdata and checks the want comments
	analysistest.Run(t, analysistest.TestData(), OsExitInMainAnalyzer, "./...")
}
