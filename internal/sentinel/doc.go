// Package sentinel provides an immutable error type for sentinel error declarations.
//
// Errors created with errors.New live in package variables that any importer
// can reassign. Error is a string type, so portbind declares its sentinels
// (ErrInvalidPort, ErrBind, ErrTimeout, ...) as constants instead, and they
// still compare correctly with errors.Is through wrapped chains.
package sentinel
