// Package perm implements permutations of {0, ..., n-1} for n up to 64,
// with composition, uniform and parity-controlled random sampling, and the
// Hall-Knuth bijection between a permutation and its index in reverse
// lexicographic order.
package perm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Jx2f/CayleyRand/pkg/uintx"
)

// MaxSize is the largest supported permutation size. The image map uses
// 8-bit entries so that a permutation of 64 symbols fits in a single cache
// line, which keeps composition fast in the inner loop.
const MaxSize = 64

var (
	ErrSizeOutOfRange = errors.New("perm: size out of range")
	ErrSizeMismatch   = errors.New("perm: size mismatch")
)

// Source yields uniformly distributed 64-bit words. *mt19937.Source
// satisfies it.
type Source interface {
	Uint64() uint64
}

// Perm sends i to At(i). The image map is a bijection on {0, ..., n-1}.
type Perm struct {
	m []uint8
}

func identity(n int) Perm {
	m := make([]uint8, n)
	for i := range m {
		m[i] = uint8(i)
	}
	return Perm{m}
}

// Identity returns the identity permutation of size n, 1 <= n <= MaxSize.
func Identity(n int) (Perm, error) {
	if n < 1 || n > MaxSize {
		return Perm{}, ErrSizeOutOfRange
	}
	return identity(n), nil
}

// FromImage constructs a permutation from an image map. The caller is
// trusted to supply a valid bijection.
func FromImage(image []uint8) (Perm, error) {
	if len(image) < 1 || len(image) > MaxSize {
		return Perm{}, ErrSizeOutOfRange
	}
	return Perm{append([]uint8(nil), image...)}, nil
}

// FromRank constructs the permutation of size n whose reverse lexicographic
// index is r, using the mixed-radix method of Hall and Knuth,
// "Combinatorial analysis and computers", Amer. Math. Monthly 72(2), 1965.
// r is reduced mod n! first. This is the inverse of Rank.
func FromRank(n int, r uintx.Uintx) (Perm, error) {
	if n < 1 || n > MaxSize {
		return Perm{}, ErrSizeOutOfRange
	}
	p := identity(n)

	factorial := make([]uintx.Uintx, n)
	factorial[0] = uintx.FromUint64(1)
	for i := 1; i < n; i++ {
		factorial[i] = factorial[i-1].MulWord(uint32(i))
	}
	r = r.Rem(factorial[n-1].MulWord(uint32(n)))

	// c[i] is the number of entries before position i that are smaller
	// than the entry at i; d holds the symbols not yet placed.
	c := make([]int, n)
	d := make([]uint8, n)
	for i := range d {
		d[i] = uint8(i)
	}
	for i := n - 1; i > 0; i-- {
		q, m := r.DivRem(factorial[i])
		c[i] = int(q.Uint64())
		r = m
	}
	for i := n - 1; i >= 0; i-- {
		p.m[i] = d[c[i]]
		copy(d[c[i]:i], d[c[i]+1:i+1])
	}
	return p, nil
}

// Rank returns the reverse lexicographic index of p, in [0, n!).
func (p Perm) Rank() uintx.Uintx {
	var r uintx.Uintx
	f := uintx.FromUint64(1)
	for i := 1; i < len(p.m); i++ {
		f = f.MulWord(uint32(i))
		count := 0
		for j := 0; j < i; j++ {
			if p.m[j] < p.m[i] {
				count++
			}
		}
		r = r.Add(f.MulWord(uint32(count)))
	}
	return r
}

// RankUint64 is Rank truncated to a 64-bit word, exact for n <= 20.
func (p Perm) RankUint64() uint64 {
	var r uint64
	f := uint64(1)
	for i := 1; i < len(p.m); i++ {
		f *= uint64(i)
		var count uint64
		for j := 0; j < i; j++ {
			if p.m[j] < p.m[i] {
				count++
			}
		}
		r += count * f
	}
	return r
}

// Size returns the number of symbols being permuted.
func (p Perm) Size() int { return len(p.m) }

// At returns the image of i.
func (p Perm) At(i int) uint8 { return p.m[i] }

// Clone returns a copy that shares no storage with p.
func (p Perm) Clone() Perm {
	return Perm{append([]uint8(nil), p.m...)}
}

// IsIdentity reports whether p maps every symbol to itself.
func (p Perm) IsIdentity() bool {
	for i, v := range p.m {
		if v != uint8(i) {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have the same size and the same image map.
func (p Perm) Equal(q Perm) bool {
	if len(p.m) != len(q.m) {
		return false
	}
	for i, v := range p.m {
		if v != q.m[i] {
			return false
		}
	}
	return true
}

// Mul composes in place: p becomes "first p, then q". Composing
// permutations of different sizes is a programmer error and panics with
// ErrSizeMismatch.
func (p Perm) Mul(q Perm) {
	if len(p.m) != len(q.m) {
		panic(ErrSizeMismatch)
	}
	for i, v := range p.m {
		p.m[i] = q.m[v]
	}
}

// Randomize sets p to a pseudo-random permutation with a uniform
// distribution, by Fisher-Yates over the current image map.
func (p Perm) Randomize(src Source) {
	n := len(p.m)
	for i := 0; i < n-1; i++ {
		j := int(src.Uint64()%uint64(n-i)) + i
		p.m[i], p.m[j] = p.m[j], p.m[i]
	}
}

// RandomizeOdd sets p to a pseudo-random odd permutation with a uniform
// distribution: Fisher-Yates over all but the last pair, counting effective
// swaps, then a final transposition of the last two entries whenever the
// swap count came out even. The map is reset to the identity first so that
// the swap count is exactly the parity of the result.
func (p Perm) RandomizeOdd(src Source) {
	n := len(p.m)
	if n < 2 {
		return
	}
	for i := range p.m {
		p.m[i] = uint8(i)
	}
	count := 0
	for i := 0; i < n-2; i++ {
		j := int(src.Uint64()%uint64(n-i)) + i
		if i != j {
			p.m[i], p.m[j] = p.m[j], p.m[i]
			count++
		}
	}
	if count%2 == 0 {
		p.m[n-2], p.m[n-1] = p.m[n-1], p.m[n-2]
	}
}

// String renders the image map as a comma-separated list.
func (p Perm) String() string {
	var b strings.Builder
	for i, v := range p.m {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
