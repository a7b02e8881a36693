package edn

import (
	"fmt"
	"math/big"
)

// CleanDigits returns the digit slice of a big numeric with underscore
// separators stripped. Computed once and cached in the node; when the raw
// slice has no separators it is returned as-is.
func (v *Value) CleanDigits() []byte {
	if v.dec != nil {
		return v.dec
	}
	sep := false
	for _, c := range v.str {
		if c == '_' {
			sep = true
			break
		}
	}
	if !sep {
		v.dec = v.str
		return v.dec
	}
	out := v.ar.Alloc(len(v.str))
	if out == nil {
		return nil
	}
	n := 0
	for _, c := range v.str {
		if c != '_' {
			out[n] = c
			n++
		}
	}
	v.dec = out[:n]
	return v.dec
}

// BigIntValue converts a big-int (or int) node to a math/big integer.
func (v *Value) BigIntValue() (*big.Int, error) {
	switch v.kind {
	case KindInt:
		return big.NewInt(v.num), nil
	case KindBigInt:
		z, ok := new(big.Int).SetString(string(v.CleanDigits()), int(v.radix))
		if !ok {
			return nil, fmt.Errorf("%w: %q radix %d", ErrBadDigits, v.str, v.radix)
		}
		if v.flags&flagNeg != 0 {
			z.Neg(z)
		}
		return z, nil
	default:
		return nil, ErrWrongKind
	}
}

// RatValue converts a ratio, big-ratio, int, big-int, or big-dec node to
// an exact math/big rational.
func (v *Value) RatValue() (*big.Rat, error) {
	switch v.kind {
	case KindInt:
		return new(big.Rat).SetInt64(v.num), nil
	case KindBigInt:
		z, err := v.BigIntValue()
		if err != nil {
			return nil, err
		}
		return new(big.Rat).SetInt(z), nil
	case KindRatio:
		return big.NewRat(v.num, v.den), nil
	case KindBigRatio:
		num, ok := new(big.Int).SetString(string(v.str), 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadDigits, v.str)
		}
		den, ok := new(big.Int).SetString(string(v.ns), 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadDigits, v.ns)
		}
		if v.flags&flagNeg != 0 {
			num.Neg(num)
		}
		r := new(big.Rat).SetFrac(num, den)
		return r, nil
	case KindBigDec:
		r, ok := new(big.Rat).SetString(string(v.CleanDigits()))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadDigits, v.str)
		}
		if v.flags&flagNeg != 0 {
			r.Neg(r)
		}
		return r, nil
	default:
		return nil, ErrWrongKind
	}
}

// BigFloatValue converts a big-dec node (or any exact numeric) to a
// math/big float with enough precision for its digits.
func (v *Value) BigFloatValue() (*big.Float, error) {
	r, err := v.RatValue()
	if err != nil {
		return nil, err
	}
	prec := uint(64)
	if n := uint(len(v.str)) * 4; n > prec {
		prec = n
	}
	return new(big.Float).SetPrec(prec).SetRat(r), nil
}
