// Package literal converts between INI value text and typed scalars.
//
// Decoding tries two grammars against the whole text, in order:
//
//  1. literal constants as understood by the expr-lang parser: numbers, quoted strings,
//     true, false, nil, Infinity, NaN, [lists] and {mappings} of those;
//  2. JSON (which adds null and JSON escapes).
//
// Text matching neither comes back unchanged as a string. Encoding writes strings bare
// whenever the decoder would hand the same string back, and JSON otherwise, so
//
//	Decode(Encode(v)) == v
//
// holds for every supported scalar, including strings shaped like numbers or booleans.
package literal
