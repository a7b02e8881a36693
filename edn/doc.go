// Package edn holds the value model of the reader: the tagged node type,
// its shape-level accessors, structural equality, the canonical ordering,
// stable hashing, and the uniqueness check backing set and map-key
// semantics.
//
// # Values
//
// A parsed tree is built from Value nodes owned by a single arena whose
// lifetime is bound to the parse result. Nodes are immutable; the decoded
// string body, the cleaned digit run of big numerics, and the structural
// hash are write-once caches filled on first access.
//
// Three shared singletons represent nil, true, and false; they carry no
// arena and may outlive every parse.
//
// # Construction
//
// Builder allocates nodes in slabs bound to one arena. The parser is the
// primary client; tagged-literal reader functions receive the same
// builder to produce replacement values with the right ownership.
//
// # Equality, ordering, hashing
//
// Equal implements structural equality (numeric across int widths and
// ratio widths, element-wise for sequences, membership for sets, key-set
// for maps). Compare is a canonical total order used by the sorted
// uniqueness strategy; Hash is a stable 64-bit mix cached per node. The
// three agree: equal values compare 0 and hash identically.
package edn
