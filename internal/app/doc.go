// Package app builds the bigcalc command tree and runs one invocation:
// configuration resolution, the selected computation, presentation and the
// mapping of failures to process exit codes.
package app
