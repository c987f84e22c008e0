// Package edit applies position, rename and delete edits to map text.
//
// Edits work on the text, never on a parsed model: the document stays the
// single source of truth and every line an edit does not target is kept
// byte for byte. Names are matched with nameid, so an edit finds an element
// however its name is quoted, cased or wrapped.
package edit
