// Package kernel contains the shared value objects of the store panel
// domain: entity identifiers, money amounts, and pickup verification codes.
//
// All value objects are immutable and must be created through their
// constructor functions; zero values fail Validate. This keeps invariants
// (a verification code is always exactly 6 digits, money is never
// negative) enforced by construction rather than by callers.
package kernel
