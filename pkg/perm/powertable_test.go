package perm

import (
	"testing"

	"github.com/Jx2f/CayleyRand/pkg/mt19937"
)

func TestPowerTableThreeCycle(t *testing.T) {
	p, _ := FromImage([]uint8{1, 2, 0})
	tab := NewPowerTable(p)

	if got := tab.Order(); got != 3 {
		t.Fatalf("order = %d, want 3", got)
	}
	if !tab.At(0).IsIdentity() {
		t.Errorf("table[0] = %s, want identity", tab.At(0))
	}
	if !tab.At(1).Equal(p) {
		t.Errorf("table[1] = %s, want %s", tab.At(1), p)
	}
	if got := tab.At(2).String(); got != "2, 0, 1" {
		t.Errorf("table[2] = %s", got)
	}

	// table[order-1] * p is the identity
	q := tab.At(2).Clone()
	q.Mul(p)
	if !q.IsIdentity() {
		t.Errorf("table[2]*p = %s, want identity", q)
	}
}

func TestPowerTableIdentity(t *testing.T) {
	p, _ := Identity(6)
	tab := NewPowerTable(p)
	if got := tab.Order(); got != 1 {
		t.Errorf("order of identity = %d", got)
	}
}

func TestPowerTableGroupLaw(t *testing.T) {
	src := mt19937.New(3)
	p, _ := Identity(8)
	for round := 0; round < 20; round++ {
		p.Randomize(src)
		tab := NewPowerTable(p)
		k := tab.Order()

		// table[i] * table[j] = table[(i+j) mod k]
		for i := 0; i < k; i += 1 + k/7 {
			for j := 0; j < k; j += 1 + k/5 {
				q := tab.At(i).Clone()
				q.Mul(tab.At(j))
				if !q.Equal(tab.At((i + j) % k)) {
					t.Fatalf("table law fails at i=%d j=%d k=%d p=%s", i, j, k, p)
				}
			}
		}
	}
}

func TestPowerTableReinitialize(t *testing.T) {
	p, _ := FromImage([]uint8{1, 2, 0})
	tab := NewPowerTable(p)
	q, _ := FromImage([]uint8{1, 0})
	tab.Init(q)
	if got := tab.Order(); got != 2 {
		t.Errorf("order after reinit = %d, want 2", got)
	}
	if !tab.At(0).IsIdentity() || tab.At(0).Size() != 2 {
		t.Errorf("table[0] after reinit = %s", tab.At(0))
	}
}
