// Package objc holds the Objective-C file-model values that plugins emit and
// the import resolver produces: imports, forward declarations, methods,
// properties and the other pieces assembled into one generated file.
//
// All values are plain data. Rendering them to source text belongs to the
// emitter, which lives outside this module.
package objc
