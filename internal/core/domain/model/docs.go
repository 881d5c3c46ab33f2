// Package model holds the ten entity records of the logistics domain.
//
// Entities are plain mutable value-holders with an immutable integer
// identifier. Identifiers are assigned by the domain services (never by the
// entity itself) through the ID allocator. Ownership between entities is
// expressed as a single foreign identifier on the owned side, with 0 acting
// as the "no owner" sentinel; owner-side collections are computed on demand
// by the services instead of being stored redundantly.
package model
