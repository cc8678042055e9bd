// Package filewriter describes the request handed to the external emitter
// for one generated class. Writing the files is done by the emitter.
package filewriter

import (
	"path/filepath"

	"objc-codegen/internal/code"
)

// Request asks the emitter to render File into the header and implementation
// files named after Name inside Dir.
type Request struct {
	Name string
	Dir  string
	File *code.File
}

// NewRequest builds a request for file in dir.
func NewRequest(dir string, file *code.File) Request {
	return Request{Name: file.Name, Dir: dir, File: file}
}

// HeaderPath returns the path of the generated header.
func (r Request) HeaderPath() string {
	return filepath.Join(r.Dir, r.Name+".h")
}

// ImplementationPath returns the path of the generated implementation file.
func (r Request) ImplementationPath() string {
	return filepath.Join(r.Dir, r.Name+r.File.Type.Extension())
}
