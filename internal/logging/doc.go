// Package logging provides the structured logging interface used by bigcalc.
// Components log through Logger so the zerolog backend can be swapped for the
// standard library logger in tests or embedded use.
package logging
