// Package internal holds the building blocks of the ctxmark analyzer.
//
// # Architecture Overview
//
//	                   +---------------------+
//	                   | markcheck.Analyzer  |  Entry point
//	                   +----------+----------+
//	                              |
//	        +---------------------+---------------------+
//	        |                                           |
//	+-------v--------+                         +--------v--------+
//	| checkers/mark  |  marked functions       | checkers/release|  guard calls
//	+-------+--------+  (+ suggested fix)      +--------+--------+
//	        |                                           |
//	        +---------------------+---------------------+
//	                              |
//	                     +--------v---------+
//	                     |     context      |  Reporting, ignores
//	                     +--------+---------+
//	                              |
//	        +---------------------+---------------------+
//	        |                     |                     |
//	 +------v------+       +------v------+       +------v------+
//	 |  directive  |       |  funcspec   |       |  typeutil   |
//	 +-------------+       +-------------+       +-------------+
//
// The goid package is unrelated to the analyzer. The runtime package uses
// it to key per-goroutine stacks.
//
// # Execution Flow
//
//  1. The analyzer collects generated files to skip and builds one
//     [ignore.Map] per file
//  2. [mark.Build] finds //ctxmark:mark functions and -require-mark matches
//  3. The mark checker reports targets whose body does not start with a
//     released guard and offers a fix inserting one
//  4. The release checker walks every call returning a guard and reports
//     those not released by defer
//  5. Ignore directives that suppressed nothing are reported last
//
// [ignore.Map]: github.com/mpyw/ctxmark/internal/directive/ignore.Map
// [mark.Build]: github.com/mpyw/ctxmark/internal/directive/mark.Build
package internal
