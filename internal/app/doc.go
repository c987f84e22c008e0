// Package app contains the core application logic of the command line tool.
// It wires the parser, link classifier, migrations and text edits to files
// on disk, decoupled from any specific entrypoint like a CLI.
package app
