// Package cgo is the foreign function table for Apple's Accelerate framework.
//
// On darwin with cgo enabled it declares the CBLAS, CATLAS and LAPACK entry points
// through thin C shims and registers an "accelerate" backend with
// internal/backend. On every other platform the package only carries the CBLAS
// enumeration mapping and registers nothing.
//
// None of the functions here check their arguments. Passing a slice shorter than
// the routine will touch is undefined behaviour inside Accelerate; the linalg
// facade validates every descriptor before it reaches this package.
package cgo
