// Package templates holds the boilerplate files stamped into a generated
// project, compiled into the binary via //go:embed.
//
// Two subdirectories serve the two skeleton variants:
//
//   - boilerplate/redux — entry point wired to a Redux store, root component,
//     store setup, and shared-state access hooks.
//
//   - boilerplate/plain — entry point and root component without a store.
//
// Files are copied as-is, overwriting the generator's defaults.
package templates

import (
	"embed"
	"fmt"
)

//go:embed all:boilerplate
var boilerplateFS embed.FS

// File is one boilerplate file and its destination inside the project.
type File struct {
	// Dest is the destination path relative to the project root.
	Dest string

	src string
}

var reduxFiles = []File{
	{Dest: "src/index.js", src: "boilerplate/redux/index.js"},
	{Dest: "src/App.js", src: "boilerplate/redux/App.js"},
	{Dest: "src/app/store.js", src: "boilerplate/redux/store.js"},
	{Dest: "src/app/hooks.js", src: "boilerplate/redux/hooks.js"},
}

var plainFiles = []File{
	{Dest: "src/index.js", src: "boilerplate/plain/index.js"},
	{Dest: "src/App.js", src: "boilerplate/plain/App.js"},
}

// Files returns the boilerplate set for a variant. The redux set carries the
// store setup and hooks modules in addition to the entry point and root
// component.
func Files(withStore bool) []File {
	if withStore {
		return reduxFiles
	}
	return plainFiles
}

// Content returns the embedded file contents.
func (f File) Content() []byte {
	data, err := boilerplateFS.ReadFile(f.src)
	if err != nil {
		// Embedded paths are fixed at compile time; a miss is a packaging bug.
		panic(fmt.Sprintf("templates: missing embedded file %s: %v", f.src, err))
	}
	return data
}
