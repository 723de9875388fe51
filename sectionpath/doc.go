// Package sectionpath encodes a nesting path as a single INI section name and back.
//
// Keys are joined with ".". A key that contains "." (or starts with a quote) is wrapped in
// single quotes, or double quotes when it holds a single quote:
//
//	["remote", "origin"]   -> remote.origin
//	["remote", "my.host"]  -> remote.'my.host'
//	["it's.here"]          -> "it's.here"
//
// Quoted keys have no escape syntax. A key holding ".", "'" and '"' at once cannot be
// represented.
package sectionpath
