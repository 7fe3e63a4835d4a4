// export_test.go exports private helpers for white-box testing.
package qunit

// Failure is a single failed assertion as collected from the page.
type Failure = failure

// Report exports the failure formatting used by Run.
var Report = report
