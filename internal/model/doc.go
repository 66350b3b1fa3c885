// Package model owns the typed-model marshaling runtime shared by every SDK DTO.
//
// Ownership boundary:
// - value kinds, field descriptors and record schemas
// - immutable records with copy-on-write field updates
// - payload decode/encode and validation entry points
//
// The package is pure: no I/O, no logging, no shared mutable state.
package model
