// Command ctxmark generates and checks ctxmark scope guards.
//
//	ctxmark ./...        # report missing or unreleased guards
//	ctxmark -fix ./...   # insert guards into //ctxmark:mark functions
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/ctxmark/markcheck"
)

func main() {
	singlechecker.Main(markcheck.Analyzer)
}
