package reader

import (
	"strconv"

	"github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/internal/scan"
	"github.com/joshuapare/ednkit/pkg/types"
)

const msgNumBoundary = "Number must be followed by whitespace or delimiter"

// numToken is the classified shape of one scanned numeric literal.
type numToken struct {
	neg     bool
	radix   int    // digit radix of the magnitude
	digits  []byte // magnitude digits (radix form) or full decimal text
	decimal bool   // has a fractional part or exponent
	sawSep  bool
	bigN    bool // 'N' suffix
	bigM    bool // 'M' suffix
}

// readNumber scans and classifies a numeric literal at the cursor:
// i64, big-int, float, big-dec, or a ratio when an integer literal is
// followed directly by '/'.
func (p *parser) readNumber() *edn.Value {
	start := p.pos
	tok, ok := p.scanNumber()
	if !ok {
		return nil
	}

	// Ratio: an integer literal followed immediately by '/'.
	if !tok.decimal && !tok.bigN && !tok.bigM && tok.radix == 10 &&
		p.pos < len(p.src) && p.src[p.pos] == '/' &&
		p.cfg.Ext.Has(types.ExtRatios) {
		return p.readRatio(tok)
	}

	if !p.numberBoundary() {
		return nil
	}

	switch {
	case tok.decimal && tok.bigN:
		p.failAt(types.ErrInvalidNumber, "Invalid number", start)
		return nil
	case tok.decimal && tok.bigM:
		return p.makeBigDec(tok)
	case tok.decimal:
		return p.makeFloat(start, tok)
	case tok.bigM:
		return p.makeBigDec(tok)
	case tok.bigN:
		return p.makeBigInt(tok)
	default:
		return p.makeInt(tok)
	}
}

// scanNumber consumes sign, magnitude, and suffix, leaving the cursor on
// the first byte after the literal.
func (p *parser) scanNumber() (numToken, bool) {
	var tok numToken
	if c := p.src[p.pos]; c == '+' || c == '-' {
		tok.neg = c == '-'
		p.pos++
	}
	if p.pos >= len(p.src) || !scan.IsDigit(p.src[p.pos]) {
		p.fail(types.ErrInvalidNumber, "Invalid number")
		return tok, false
	}

	// Radix prefixes anchored at a leading zero.
	if p.src[p.pos] == '0' && p.pos+1 < len(p.src) {
		switch p.src[p.pos+1] {
		case 'x', 'X':
			p.pos += 2
			return p.scanRadixDigits(&tok, 16)
		case 'b', 'B':
			p.pos += 2
			return p.scanRadixDigits(&tok, 2)
		case 'o', 'O':
			p.pos += 2
			return p.scanRadixDigits(&tok, 8)
		}
	}

	digStart := p.pos
	if !p.scanDigitRun(10, &tok.sawSep) {
		return tok, false
	}

	// 'NrDDDD' dispatches by a decimal radix.
	if p.pos < len(p.src) && p.src[p.pos] == 'r' {
		radix, err := strconv.Atoi(stripSeps(string(p.src[digStart:p.pos]), tok.sawSep))
		if err != nil || radix < 2 || radix > 36 {
			p.fail(types.ErrInvalidNumber, "Radix must be within 2..36")
			return tok, false
		}
		p.pos++
		tok.sawSep = false
		return p.scanRadixDigits(&tok, radix)
	}

	// Bare leading zero: octal when every digit is octal and the literal
	// stays integral; otherwise it reads as decimal.
	if p.src[digStart] == '0' && p.pos-digStart > 1 &&
		!p.decimalTailAhead() && allOctal(p.src[digStart:p.pos]) {
		tok.radix = 8
		tok.digits = p.src[digStart:p.pos]
		p.scanSuffix(&tok)
		return tok, p.err == nil
	}

	tok.radix = 10
	tok.digits = p.src[digStart:p.pos]

	// Fraction and exponent extend the same decimal text.
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		tok.decimal = true
		p.pos++
		if p.pos < len(p.src) && scan.IsDigit(p.src[p.pos]) {
			if !p.scanDigitRun(10, &tok.sawSep) {
				return tok, false
			}
		}
	}
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		tok.decimal = true
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if p.pos >= len(p.src) || !scan.IsDigit(p.src[p.pos]) {
			p.fail(types.ErrInvalidNumber, "Exponent requires digits")
			return tok, false
		}
		if !p.scanDigitRun(10, &tok.sawSep) {
			return tok, false
		}
	}
	tok.digits = p.src[digStart:p.pos]

	p.scanSuffix(&tok)
	return tok, p.err == nil
}

// scanRadixDigits finishes a radix-prefixed magnitude.
func (p *parser) scanRadixDigits(tok *numToken, radix int) (numToken, bool) {
	tok.radix = radix
	digStart := p.pos
	if !p.scanDigitRun(radix, &tok.sawSep) {
		return *tok, false
	}
	if p.pos == digStart {
		p.fail(types.ErrInvalidNumber, "Invalid number")
		return *tok, false
	}
	tok.digits = p.src[digStart:p.pos]
	p.scanSuffix(tok)
	return *tok, p.err == nil
}

// scanSuffix consumes a trailing N or M under the big-numerics gate.
func (p *parser) scanSuffix(tok *numToken) {
	if p.pos >= len(p.src) {
		return
	}
	switch p.src[p.pos] {
	case 'N':
		if !p.cfg.Ext.Has(types.ExtBigNumerics) {
			p.fail(types.ErrInvalidNumber, msgNumBoundary)
			return
		}
		tok.bigN = true
		p.pos++
	case 'M':
		if !p.cfg.Ext.Has(types.ExtBigNumerics) {
			p.fail(types.ErrInvalidNumber, msgNumBoundary)
			return
		}
		tok.bigM = true
		p.pos++
	}
}

// scanDigitRun consumes digits of the given radix, honouring underscore
// separators when the extension is on. Separators are never leading,
// trailing, or adjacent.
func (p *parser) scanDigitRun(radix int, sawSep *bool) bool {
	allowSep := p.cfg.Ext.Has(types.ExtUnderscoreDigits)
	if radix == 10 && !allowSep {
		// Common case: a pure ASCII digit run.
		p.pos = scan.ScanDigits(p.src, p.pos)
		return true
	}
	sawDigit := false
	pendingSep := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' && allowSep {
			if !sawDigit || pendingSep {
				p.fail(types.ErrInvalidNumber, "Misplaced digit separator")
				return false
			}
			pendingSep = true
			*sawSep = true
			p.pos++
			continue
		}
		if !isRadixDigit(c, radix) {
			break
		}
		sawDigit = true
		pendingSep = false
		p.pos++
	}
	if pendingSep {
		p.fail(types.ErrInvalidNumber, "Misplaced digit separator")
		return false
	}
	return true
}

// decimalTailAhead reports whether the cursor sits on a fraction or
// exponent continuation.
func (p *parser) decimalTailAhead() bool {
	if p.pos >= len(p.src) {
		return false
	}
	c := p.src[p.pos]
	return c == '.' || c == 'e' || c == 'E'
}

// numberBoundary verifies the byte after a number: EOF, whitespace-class,
// or a structural delimiter.
func (p *parser) numberBoundary() bool {
	if p.pos >= len(p.src) {
		return true
	}
	c := p.src[p.pos]
	if scan.IsWhitespace(c) {
		return true
	}
	switch c {
	case ')', ']', '}', '"', '#', '(', '[':
		return true
	}
	p.fail(types.ErrInvalidNumber, msgNumBoundary)
	return false
}

func isRadixDigit(c byte, radix int) bool {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'z':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return false
	}
	return d < radix
}

func allOctal(digits []byte) bool {
	for _, c := range digits {
		if c == '_' {
			continue
		}
		if c < '0' || c > '7' {
			return false
		}
	}
	return true
}

func stripSeps(s string, sawSep bool) string {
	if !sawSep {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// makeInt tries the signed 64-bit fit; overflow widens to big-int.
func (p *parser) makeInt(tok numToken) *edn.Value {
	text := stripSeps(string(tok.digits), tok.sawSep)
	if tok.neg {
		text = "-" + text
	}
	n, err := strconv.ParseInt(text, tok.radix, 64)
	if err == nil {
		return p.built(p.b.Int(n))
	}
	return p.makeBigInt(tok)
}

func (p *parser) makeBigInt(tok numToken) *edn.Value {
	return p.built(p.b.BigInt(tok.digits, tok.radix, tok.neg))
}

func (p *parser) makeFloat(start int, tok numToken) *edn.Value {
	text := stripSeps(string(tok.digits), tok.sawSep)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.failAt(types.ErrInvalidNumber, "Invalid number", start)
		return nil
	}
	if tok.neg {
		f = -f
	}
	return p.built(p.b.Float(f))
}

func (p *parser) makeBigDec(tok numToken) *edn.Value {
	return p.built(p.b.BigDec(tok.digits, tok.neg))
}

// readRatio parses the denominator after '/', reduces to lowest terms,
// and collapses degenerate results to integers. Overflow on either side
// widens to big-ratio.
func (p *parser) readRatio(numTok numToken) *edn.Value {
	p.pos++ // '/'
	if p.pos >= len(p.src) || !scan.IsDigit(p.src[p.pos]) {
		return p.fail(types.ErrInvalidNumber, "Ratio requires an integer denominator")
	}
	denStart := p.pos
	var denSep bool
	if !p.scanDigitRun(10, &denSep) {
		return nil
	}
	denDigits := p.src[denStart:p.pos]
	if !p.numberBoundary() {
		return nil
	}

	numText := stripSeps(string(numTok.digits), numTok.sawSep)
	denText := stripSeps(string(denDigits), denSep)

	num, errN := strconv.ParseInt(numText, 10, 64)
	den, errD := strconv.ParseInt(denText, 10, 64)
	if errN != nil || errD != nil {
		return p.makeBigRatio(numTok, numText, denText, denStart)
	}
	if den == 0 {
		p.failAt(types.ErrInvalidNumber, "Ratio denominator must be positive", denStart)
		return nil
	}
	if numTok.neg {
		num = -num
	}
	if num == 0 {
		return p.built(p.b.Int(0))
	}
	g := gcd64(num, den)
	num /= g
	den /= g
	if den == 1 {
		return p.built(p.b.Int(num))
	}
	return p.built(p.b.Ratio(num, den))
}

func (p *parser) makeBigRatio(numTok numToken, numText, denText string, denStart int) *edn.Value {
	if allZero(denText) {
		p.failAt(types.ErrInvalidNumber, "Ratio denominator must be positive", denStart)
		return nil
	}
	ar := p.b.Arena()
	numDigits := ar.CopyString(numText)
	denDigits := ar.CopyString(denText)
	if numDigits == nil || denDigits == nil {
		return p.failOOM()
	}
	return p.built(p.b.BigRatio(numDigits, denDigits, numTok.neg))
}

func allZero(digits string) bool {
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return false
		}
	}
	return true
}

func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// built converts a nil node from the builder into an out-of-memory
// failure.
func (p *parser) built(v *edn.Value) *edn.Value {
	if v == nil {
		return p.failOOM()
	}
	return v
}
