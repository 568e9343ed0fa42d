package perm

// PowerTable caches every power of a permutation p: entry i is p composed
// with itself i times, for 0 <= i < ord(p). The walk through the Cayley
// graph then costs one table lookup per step instead of a modular
// exponentiation.
type PowerTable struct {
	pow   []Perm
	order int
}

// NewPowerTable returns an initialized power table for p.
func NewPowerTable(p Perm) *PowerTable {
	t := new(PowerTable)
	t.Init(p)
	return t
}

// Init fills the table with p^0, p^1, ... until the powers cycle back to
// the identity, and records the order. Reusable: any previous contents are
// discarded.
func (t *PowerTable) Init(p Perm) {
	t.pow = t.pow[:0]
	t.pow = append(t.pow, identity(p.Size()))
	q := p.Clone()
	t.order = 1
	for !q.IsIdentity() {
		t.pow = append(t.pow, q.Clone())
		q.Mul(p)
		t.order++
	}
}

// Order returns the order of the underlying permutation.
func (t *PowerTable) Order() int { return t.order }

// At returns the i'th power of the underlying permutation, 0 <= i < Order.
// The returned permutation shares the table's storage and must be treated
// as read-only.
func (t *PowerTable) At(i int) Perm { return t.pow[i] }
