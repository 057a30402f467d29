// Package verify runs a checklist against a project directory. Compile turns
// the declarative rules of a checklist.Checklist into Checks; RunAll executes
// them in order and folds every outcome, including errors and panics, into a
// RunReport. Nothing here prints or exits; see package report for that.
package verify
