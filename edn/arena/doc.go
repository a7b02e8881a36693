// Package arena provides the bump allocator that owns every byte run a
// parse produces.
//
// # Overview
//
// A parse call creates exactly one Arena. Strings copied out of the input,
// decoded escape bodies, and cleaned digit runs are all placed in the
// arena, and the whole chain is dropped together when the tree is
// abandoned or released. There is no per-allocation free.
//
// # Allocation
//
//   - Alloc(n): zeroed n-byte run, 8-byte aligned within its block
//   - Copy(b) / CopyString(s): allocate-and-fill helpers
//   - Release(): drop the block chain
//
// Blocks grow along a tiered schedule (16 KiB, then 64 KiB, then 256 KiB);
// oversized requests get a dedicated block without advancing the tier.
//
// # Thread Safety
//
// An Arena is not safe for concurrent use. Distinct parses use distinct
// arenas and are fully independent.
package arena
