// Package orchestration runs one or more computations concurrently and
// compares their results. It depends on the presentation layer only through
// the ProgressReporter and ResultPresenter interfaces.
package orchestration
