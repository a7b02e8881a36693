package scan

// The exported scanners each have a word-at-a-time body and a scalar
// fallback returning identical results. The scalar implementation is
// authoritative; UseScalar forces it so tests can run both and compare.

var scalarOnly bool

// UseScalar toggles the authoritative scalar implementations for every
// scanner in the package. Intended for tests and benchmarks.
func UseScalar(on bool) { scalarOnly = on }

// SkipWhitespace returns the position of the first byte at or after pos
// that is neither whitespace nor inside a line comment. Line comments
// start at ';' and run through the next '\n'; EOF terminates a comment.
func SkipWhitespace(src []byte, pos int) int {
	if scalarOnly {
		return skipWhitespaceScalar(src, pos)
	}
	return skipWhitespaceFast(src, pos)
}

func skipWhitespaceScalar(src []byte, pos int) int {
	for pos < len(src) {
		b := src[pos]
		if b == ';' {
			pos = skipCommentScalar(src, pos+1)
			continue
		}
		if !wsTable[b] {
			return pos
		}
		pos++
	}
	return pos
}

func skipCommentScalar(src []byte, pos int) int {
	for pos < len(src) && src[pos] != '\n' {
		pos++
	}
	return pos
}

func skipWhitespaceFast(src []byte, pos int) int {
	for {
		for pos+wordSize <= len(src) {
			if wsMask(loadWord(src, pos)) != highs {
				break
			}
			pos += wordSize
		}
		if pos >= len(src) {
			return pos
		}
		b := src[pos]
		if b == ';' {
			pos = findNewlineFast(src, pos+1)
			continue
		}
		if !wsTable[b] {
			return pos
		}
		pos++
	}
}

// findNewlineFast returns the position of the next '\n' at or after pos,
// or len(src).
func findNewlineFast(src []byte, pos int) int {
	for pos+wordSize <= len(src) {
		if m := hasByte(loadWord(src, pos), '\n'); m != 0 {
			return pos + firstLane(m)
		}
		pos += wordSize
	}
	for pos < len(src) && src[pos] != '\n' {
		pos++
	}
	return pos
}

// FindQuote returns the position of the next unescaped '"' at or after
// pos, and whether any backslash was seen before it. ok is false when the
// input ends first.
func FindQuote(src []byte, pos int) (end int, hasBackslash, ok bool) {
	if scalarOnly {
		return findQuoteScalar(src, pos)
	}
	return findQuoteFast(src, pos)
}

func findQuoteScalar(src []byte, pos int) (int, bool, bool) {
	sawBackslash := false
	for pos < len(src) {
		switch src[pos] {
		case '"':
			return pos, sawBackslash, true
		case '\\':
			sawBackslash = true
			pos += 2
		default:
			pos++
		}
	}
	return pos, sawBackslash, false
}

func findQuoteFast(src []byte, pos int) (int, bool, bool) {
	sawBackslash := false
	for {
		for pos+wordSize <= len(src) {
			w := loadWord(src, pos)
			m := hasByte(w, '"') | hasByte(w, '\\')
			if m != 0 {
				pos += firstLane(m)
				break
			}
			pos += wordSize
		}
		if pos >= len(src) {
			return pos, sawBackslash, false
		}
		switch src[pos] {
		case '"':
			return pos, sawBackslash, true
		case '\\':
			sawBackslash = true
			pos += 2
		default:
			pos++
		}
	}
}

// Identifier describes a scanned identifier token.
type Identifier struct {
	End        int // position of the first delimiter byte (or len(src))
	FirstSlash int // absolute position of the first '/', or -1
	AdjColons  bool
}

// ScanIdentifier scans the token starting at pos up to the first delimiter
// byte and reports the first '/' and any adjacent-colon pair inside it.
func ScanIdentifier(src []byte, pos int) Identifier {
	var end int
	if scalarOnly {
		end = scanIdentEndScalar(src, pos)
	} else {
		end = scanIdentEndFast(src, pos)
	}
	id := Identifier{End: end, FirstSlash: -1}
	prevColon := false
	for i := pos; i < end; i++ {
		switch src[i] {
		case '/':
			if id.FirstSlash < 0 {
				id.FirstSlash = i
			}
			prevColon = false
		case ':':
			if prevColon {
				id.AdjColons = true
			}
			prevColon = true
		default:
			prevColon = false
		}
	}
	return id
}

func scanIdentEndScalar(src []byte, pos int) int {
	for pos < len(src) && !delimTable[src[pos]] {
		pos++
	}
	return pos
}

func scanIdentEndFast(src []byte, pos int) int {
	for {
		for pos+wordSize <= len(src) {
			m := candidateStopMask(loadWord(src, pos))
			if m != 0 {
				pos += firstLane(m)
				break
			}
			pos += wordSize
		}
		if pos >= len(src) || delimTable[src[pos]] {
			return pos
		}
		// Candidate byte was not a true delimiter (a low control byte);
		// it belongs to the token.
		pos++
	}
}

// ScanDigits returns the end of the run of ASCII digits starting at pos.
func ScanDigits(src []byte, pos int) int {
	if scalarOnly {
		return scanDigitsScalar(src, pos)
	}
	return scanDigitsFast(src, pos)
}

func scanDigitsScalar(src []byte, pos int) int {
	for pos < len(src) && src[pos] >= '0' && src[pos] <= '9' {
		pos++
	}
	return pos
}

func scanDigitsFast(src []byte, pos int) int {
	for pos+wordSize <= len(src) && allDigits(loadWord(src, pos)) {
		pos += wordSize
	}
	return scanDigitsScalar(src, pos)
}
