// Package types defines the shared interfaces and small value types used
// throughout pyboot: the filesystem abstraction, host platform identifiers,
// and the content transform contract every template rewrite implements.
package types
