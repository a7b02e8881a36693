package arena

// allocBlock obtains one block from the runtime allocator, reporting nil
// instead of propagating an allocation panic so callers can surface an
// out-of-memory parse error.
func allocBlock(size int) (block []byte) {
	defer func() {
		if recover() != nil {
			block = nil
		}
	}()
	return make([]byte, size)
}
