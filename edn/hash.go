package edn

import (
	"math"
	"math/big"
)

// Stable 64-bit FNV-1a mixing over the canonical encoding of a value.
// Structurally equal values hash equal; the hash is cached in the node on
// first computation (write-once from 0).

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

// Family salts keep, for example, the string "ab" and the symbol ab from
// colliding trivially. Kinds that can compare equal share a salt.
const (
	saltNil      uint64 = 0x01
	saltBool     uint64 = 0x02
	saltInt      uint64 = 0x03 // int and small big-int
	saltBigInt   uint64 = 0x04 // big-int beyond 64 bits
	saltRatio    uint64 = 0x05 // ratio and small big-ratio
	saltBigRatio uint64 = 0x06
	saltFloat    uint64 = 0x07
	saltBigDec   uint64 = 0x08
	saltChar     uint64 = 0x09
	saltString   uint64 = 0x0A
	saltSymbol   uint64 = 0x0B
	saltKeyword  uint64 = 0x0C
	saltSeq      uint64 = 0x0D // lists and vectors compare equal
	saltSet      uint64 = 0x0E
	saltMap      uint64 = 0x0F
	saltTagged   uint64 = 0x10
	saltExternal uint64 = 0x11
)

func mixByte(h uint64, b byte) uint64 {
	return (h ^ uint64(b)) * fnvPrime
}

func mixBytes(h uint64, bs []byte) uint64 {
	for _, b := range bs {
		h = mixByte(h, b)
	}
	return h
}

func mixU64(h, x uint64) uint64 {
	for i := 0; i < 8; i++ {
		h = mixByte(h, byte(x))
		x >>= 8
	}
	return h
}

func seed(salt uint64) uint64 {
	return mixU64(fnvOffset, salt)
}

// Hash returns the cached structural hash, computing it on first use.
// A computed hash of 0 is nudged to a fixed non-zero value so 0 keeps
// meaning "not computed".
func (v *Value) Hash() uint64 {
	if v.hash != 0 {
		return v.hash
	}
	h := v.computeHash()
	if h == 0 {
		h = 0x9E3779B97F4A7C15
	}
	v.hash = h
	return h
}

func (v *Value) computeHash() uint64 {
	switch v.kind {
	case KindNil:
		return seed(saltNil)
	case KindBool:
		return mixU64(seed(saltBool), uint64(v.num))
	case KindInt:
		return mixU64(seed(saltInt), uint64(v.num))
	case KindBigInt:
		return hashBigInt(v)
	case KindRatio:
		return hashRatio(big.NewRat(v.num, v.den))
	case KindBigRatio:
		r, err := v.RatValue()
		if err != nil {
			return mixBytes(mixBytes(seed(saltBigRatio), v.str), v.ns)
		}
		return hashRatio(r)
	case KindFloat:
		return hashFloat(v.f)
	case KindBigDec:
		r, err := v.RatValue()
		if err != nil {
			return mixBytes(seed(saltBigDec), v.str)
		}
		return mixBytes(seed(saltBigDec), []byte(r.RatString()))
	case KindChar:
		return mixU64(seed(saltChar), uint64(v.num))
	case KindString:
		body, err := v.decodedBytes()
		if err != nil {
			body = v.str
		}
		return mixBytes(seed(saltString), body)
	case KindSymbol:
		return hashNamed(saltSymbol, v.ns, v.str)
	case KindKeyword:
		return hashNamed(saltKeyword, v.ns, v.str)
	case KindList, KindVector:
		h := seed(saltSeq)
		for _, e := range v.items {
			h = mixU64(h, e.Hash())
		}
		return mixU64(h, uint64(len(v.items)))
	case KindSet:
		// Order-insensitive: wrapping sum of element hashes.
		var sum uint64
		for _, e := range v.items {
			sum += e.Hash()
		}
		return mixU64(mixU64(seed(saltSet), sum), uint64(len(v.items)))
	case KindMap:
		var sum uint64
		for i, k := range v.items {
			sum += mixU64(mixU64(seed(saltMap), k.Hash()), v.vals[i].Hash())
		}
		return mixU64(mixU64(seed(saltMap), sum), uint64(len(v.items)))
	case KindTagged:
		return mixU64(mixBytes(seed(saltTagged), v.str), v.inner.Hash())
	case KindExternal:
		if et, ok := LookupExtType(v.extID); ok && et.Hash != nil {
			return mixU64(mixU64(seed(saltExternal), uint64(v.extID)), et.Hash(v.ext))
		}
		return mixU64(seed(saltExternal), uint64(v.extID))
	default:
		return seed(saltNil)
	}
}

// hashBigInt hashes a big integer so a value fitting 64 bits collides
// exactly with the equal KindInt node.
func hashBigInt(v *Value) uint64 {
	z, err := v.BigIntValue()
	if err != nil {
		return mixBytes(seed(saltBigInt), v.str)
	}
	if z.IsInt64() {
		return mixU64(seed(saltInt), uint64(z.Int64()))
	}
	return mixBytes(seed(saltBigInt), []byte(z.String()))
}

// hashRatio hashes a rational so equal ratio and big-ratio values
// collide.
func hashRatio(r *big.Rat) uint64 {
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		h := seed(saltRatio)
		h = mixU64(h, uint64(r.Num().Int64()))
		return mixU64(h, uint64(r.Denom().Int64()))
	}
	return mixBytes(seed(saltBigRatio), []byte(r.RatString()))
}

func hashFloat(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return mixU64(seed(saltFloat), 0x7FF8000000000001)
	case f == 0:
		// +0.0 and -0.0 compare equal; hash them identically.
		return mixU64(seed(saltFloat), 0)
	default:
		return mixU64(seed(saltFloat), math.Float64bits(f))
	}
}

func hashNamed(salt uint64, ns, name []byte) uint64 {
	h := seed(salt)
	if ns != nil {
		h = mixBytes(h, ns)
		h = mixByte(h, '/')
	}
	return mixBytes(h, name)
}
