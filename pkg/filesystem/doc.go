// Package filesystem provides filesystem implementations for pyboot.
//
// Every implementation satisfies types.FS and is backed by afero, so the
// production OS filesystem and the in-memory test filesystem share one code
// path. WriteFileAtomic builds whole-or-absent writes on top of it.
package filesystem
