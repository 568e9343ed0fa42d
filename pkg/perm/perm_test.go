package perm

import (
	"testing"

	"github.com/Jx2f/CayleyRand/pkg/mt19937"
	"github.com/Jx2f/CayleyRand/pkg/uintx"
)

// inversionParity is the number of inversions mod 2: 1 iff p is odd.
func inversionParity(p Perm) int {
	count := 0
	for i := 0; i < p.Size(); i++ {
		for j := i + 1; j < p.Size(); j++ {
			if p.At(i) > p.At(j) {
				count++
			}
		}
	}
	return count % 2
}

func isBijective(p Perm) bool {
	var seen [MaxSize]bool
	for i := 0; i < p.Size(); i++ {
		v := p.At(i)
		if int(v) >= p.Size() || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestIdentity(t *testing.T) {
	p, err := Identity(5)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsIdentity() {
		t.Errorf("Identity(5) = %v", p)
	}
	// the identity comes last in reverse lexicographic order: 5! - 1 = 0x77
	if got := p.Rank().Hex(); got != "77" {
		t.Errorf("identity rank = %s", got)
	}
}

func TestSizeOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 65, 256} {
		if _, err := Identity(n); err != ErrSizeOutOfRange {
			t.Errorf("Identity(%d) err = %v", n, err)
		}
		if _, err := FromRank(n, uintx.FromUint64(0)); err != ErrSizeOutOfRange {
			t.Errorf("FromRank(%d) err = %v", n, err)
		}
	}
	if _, err := Identity(64); err != nil {
		t.Errorf("Identity(64) err = %v", err)
	}
}

func TestFromRank73(t *testing.T) {
	p, err := FromRank(5, uintx.FromUint64(73))
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "2, 4, 1, 0, 3" {
		t.Errorf("FromRank(5, 73) = %s", got)
	}
	if got := p.RankUint64(); got != 73 {
		t.Errorf("rank round trip = %d", got)
	}
}

func TestRankRoundTrip(t *testing.T) {
	for n := 1; n <= 7; n++ {
		fact := uint64(1)
		for i := 2; i <= n; i++ {
			fact *= uint64(i)
		}
		for r := uint64(0); r < fact; r++ {
			p, err := FromRank(n, uintx.FromUint64(r))
			if err != nil {
				t.Fatal(err)
			}
			if !isBijective(p) {
				t.Fatalf("FromRank(%d, %d) = %s is not a bijection", n, r, p)
			}
			if got := p.RankUint64(); got != r {
				t.Fatalf("FromRank(%d, %d).Rank() = %d", n, r, got)
			}
			if got := p.Rank().Uint64(); got != r {
				t.Fatalf("FromRank(%d, %d).Rank() (wide) = %d", n, r, got)
			}
		}
	}
}

func TestFromRankReduces(t *testing.T) {
	// rank n! + r must construct the same permutation as rank r
	p, _ := FromRank(5, uintx.FromUint64(120+73))
	q, _ := FromRank(5, uintx.FromUint64(73))
	if !p.Equal(q) {
		t.Errorf("FromRank(5, 120+73) = %s, want %s", p, q)
	}
}

func TestCompose(t *testing.T) {
	p, _ := FromImage([]uint8{1, 0, 3, 2})
	q, _ := FromImage([]uint8{2, 3, 0, 1})
	p.Mul(q)
	if got := p.String(); got != "3, 2, 1, 0" {
		t.Errorf("p*q = %s", got)
	}

	p, _ = FromImage([]uint8{1, 0, 3, 2})
	p.Mul(p.Clone())
	if !p.IsIdentity() {
		t.Errorf("p*p = %s, want identity", p)
	}
}

func TestComposeSizeMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrSizeMismatch {
			t.Errorf("recovered %v, want ErrSizeMismatch", r)
		}
	}()
	p, _ := Identity(4)
	q, _ := Identity(5)
	p.Mul(q)
}

func TestEqual(t *testing.T) {
	p, _ := FromImage([]uint8{1, 0, 2})
	q, _ := FromImage([]uint8{1, 0, 2})
	r, _ := FromImage([]uint8{1, 2, 0})
	s, _ := Identity(4)
	if !p.Equal(q) || p.Equal(r) || p.Equal(s) {
		t.Error("Equal misbehaves")
	}
}

func TestRandomizeBijective(t *testing.T) {
	src := mt19937.New(1)
	p, _ := Identity(32)
	for i := 0; i < 200; i++ {
		p.Randomize(src)
		if !isBijective(p) {
			t.Fatalf("Randomize produced %s", p)
		}
	}
}

func TestRandomizeOddParity(t *testing.T) {
	src := mt19937.New(2)
	for _, n := range []int{3, 5, 8, 32, 64} {
		p, _ := Identity(n)
		for i := 0; i < 200; i++ {
			p.RandomizeOdd(src)
			if !isBijective(p) {
				t.Fatalf("RandomizeOdd produced %s", p)
			}
			if got := inversionParity(p); got != 1 {
				t.Fatalf("RandomizeOdd(n=%d) parity = %d, map %s", n, got, p)
			}
		}
	}
}

func TestString(t *testing.T) {
	p, _ := FromImage([]uint8{2, 0, 1})
	if got := p.String(); got != "2, 0, 1" {
		t.Errorf("String = %q", got)
	}
}
