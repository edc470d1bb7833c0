// Package bigint implements signed integers of unbounded magnitude.
//
// An Int stores its magnitude as little-endian base-2^32 limbs plus a sign
// flag. The package provides addition and subtraction with sign handling,
// schoolbook and Karatsuba multiplication selected through a Multiplier,
// comparison, and three renderings: binary, decimal by double-dabble and
// decimal by division into base-10^9 chunks. BitView exposes a read-only
// byte snapshot of a magnitude.
//
// Division is part of the API but not implemented; Quo reports
// ErrNotImplemented rather than returning a wrong value.
package bigint
