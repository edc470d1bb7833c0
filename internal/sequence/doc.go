// Package sequence drives bigint through the two demonstration workloads:
// the Fibonacci sequence by repeated addition, and repeated squaring of a
// seed. Both honor context cancellation between steps and report progress.
package sequence
