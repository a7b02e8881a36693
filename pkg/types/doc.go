// Package types holds the shared option enums, limits, and the typed error
// taxonomy of the ednkit reader. It has no dependencies on the rest of the
// module so every layer can import it.
package types
