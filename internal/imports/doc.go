// Package imports decides how a type referenced by generated code becomes
// visible to that code: not at all, through a forward declaration, or
// through an #import of a specific header from a specific library.
//
// Three sources feed the decision:
//   - the system type registry in package primitive
//   - user supplied type lookups (objectspec.TypeLookup)
//   - per-attribute overrides (LibraryTypeIsDefinedIn, FileTypeIsDefinedIn)
//
// Every function here is pure. Unknown names never fail: they are treated
// as user types that need their own header and cannot be forward declared
// unless their computed type is an object pointer.
package imports
