package markcheck_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/mpyw/ctxmark/markcheck"
)

func TestMark(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, markcheck.Analyzer, "mark")
}

func TestMarkFix(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.RunWithSuggestedFixes(t, testdata, markcheck.Analyzer, "markfix")
}

func TestRelease(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, markcheck.Analyzer, "release")
}

func TestRequireMark(t *testing.T) {
	testdata := analysistest.TestData()

	required := "requiremark.Run,requiremark.Worker.Start"
	if err := markcheck.Analyzer.Flags.Set("require-mark", required); err != nil {
		t.Fatal(err)
	}

	defer func() {
		_ = markcheck.Analyzer.Flags.Set("require-mark", "")
	}()

	analysistest.Run(t, testdata, markcheck.Analyzer, "requiremark")
}
