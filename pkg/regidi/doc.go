// Package regidi turns small integers, or the low bits of a hash, into short
// pronounceable digests such as "potato", and back.
//
// A digest18 is three syllables encoding 18 bits. A digest24 appends a two
// digit suffix "01".."64" carrying six more bits. Keys whose natural digest
// would contain an unwanted word are rendered with auxiliary syllables
// instead, according to a substitution table.
//
// Digests summarize; they are not hashes and offer no collision resistance.
package regidi
