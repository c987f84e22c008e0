// Package publish pushes parsed map snapshots to a socket.io server.
//
// Watch mode uses it to stream every successfully parsed revision of a map
// to a live viewer. A Snapshot carries a fresh revision id, the parsed model
// and the link classification, so the receiving side needs no parser of its
// own.
package publish
