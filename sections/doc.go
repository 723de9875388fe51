// Package sections maps a configuration tree to the ordered list of INI sections that
// represent it, and back.
//
// Nesting is carried by section names (see package sectionpath): the tree
//
//	{remote: {origin: {url: "s3://b"}, "backup.eu": {url: "gs://o"}}}
//
// flattens to
//
//	[remote]
//	[remote.origin]
//	url = s3://b
//	[remote.'backup.eu']
//	url = gs://o
package sections
