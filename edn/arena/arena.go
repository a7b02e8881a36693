package arena

// Arena is a bump allocator backed by a chain of byte blocks. Every byte
// run allocated during one parse belongs to one arena and is released as a
// unit; there is no per-allocation free.
//
// Blocks grow along a tiered schedule: the first block is 16 KiB, the next
// 64 KiB, and every block after that 256 KiB. An allocation larger than
// the tier gets a dedicated block of exactly its (aligned) size so large
// strings never force the tier upward.
type Arena struct {
	blocks [][]byte
	cur    []byte
	off    int
	tier   int
}

// Block growth tiers, in bytes.
const (
	tierFirst  = 16 << 10
	tierSecond = 64 << 10
	tierRest   = 256 << 10
)

// align rounds n up to an 8-byte boundary.
func align(n int) int { return (n + 7) &^ 7 }

// New creates an empty arena. The first block is allocated lazily on the
// first Alloc so a parse that only touches singletons costs nothing.
func New() *Arena {
	return &Arena{}
}

// tierSize returns the size of the next block to allocate.
func (a *Arena) tierSize() int {
	switch a.tier {
	case 0:
		return tierFirst
	case 1:
		return tierSecond
	default:
		return tierRest
	}
}

// Alloc returns a zeroed byte run of length n from the arena, aligned to 8
// bytes within its block. Returns nil when n is negative or the underlying
// allocator refuses.
func (a *Arena) Alloc(n int) []byte {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []byte{}
	}
	need := align(n)
	if a.cur == nil || a.off+need > len(a.cur) {
		if !a.grow(need) {
			return nil
		}
	}
	b := a.cur[a.off : a.off+n : a.off+n]
	a.off += need
	return b
}

// Copy allocates a run of len(src) bytes and copies src into it.
func (a *Arena) Copy(src []byte) []byte {
	b := a.Alloc(len(src))
	if b == nil {
		return nil
	}
	copy(b, src)
	return b
}

// CopyString allocates a run holding the bytes of s.
func (a *Arena) CopyString(s string) []byte {
	b := a.Alloc(len(s))
	if b == nil {
		return nil
	}
	copy(b, s)
	return b
}

// grow appends a new block large enough for need and makes it current.
func (a *Arena) grow(need int) bool {
	size := a.tierSize()
	if need > size {
		size = align(need)
	} else {
		a.tier++
	}
	block := allocBlock(size)
	if block == nil {
		return false
	}
	a.blocks = append(a.blocks, block)
	a.cur = block
	a.off = 0
	return true
}

// Release drops every block in the chain. The arena is reusable afterwards
// but any byte run handed out before the call is invalid.
func (a *Arena) Release() {
	a.blocks = nil
	a.cur = nil
	a.off = 0
	a.tier = 0
}

// Blocks reports how many blocks the arena currently holds.
func (a *Arena) Blocks() int { return len(a.blocks) }

// Used reports the bytes consumed in the current block.
func (a *Arena) Used() int { return a.off }
