// Package clicks holds the wire types shared by the server, the persister
// and every client of the click pipeline.
package clicks

//go:generate protoc --go_out=. --go_opt=paths=source_relative clicks.proto
