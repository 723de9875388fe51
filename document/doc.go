// Package document reads and writes whole INI documents as configuration trees.
//
// The INI engine (gopkg.in/ini.v1) handles the line format: section headers, key = value
// lines, full-line comments. Everything that gives the text structure beyond that is done
// here: section names carry nesting paths (package sectionpath), and values carry types
// (package literal).
//
//	root, err := document.Decode([]byte("[x.y]\nz = 1\nw = \"1\"\n"))
//	// root: {x: {y: {z: int64(1), w: "1"}}}
//
// Engine settings are explicit Options; there is no shared parser state between calls.
// Comments are dropped on read, so Modify does not preserve them.
package document
