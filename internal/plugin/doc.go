// Package plugin defines the contract every generation plugin implements and
// the host that composes the plugins registered for a spec into one file.
//
// Composition rules:
//   - list hooks are concatenated in registration order
//   - FileType and Nullability take the first value returned
//   - SubclassingRestricted is true if any plugin asks for it
//   - TransformBaseFile and TransformFileRequest are chained left to right
//   - ValidationErrors are concatenated; any error blocks the file
//
// Plugins are pure. The host never mutates a spec and keeps no state
// between builds, so one Host may serve concurrent builds of different specs.
package plugin
