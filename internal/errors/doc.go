// Package apperrors defines bigcalc's error classes and process exit codes.
//
// Errors are wrapped with fmt.Errorf and %w throughout, and every type that
// carries a cause implements Unwrap so errors.Is and errors.As see through it.
package apperrors
