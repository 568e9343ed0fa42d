package core

import (
	"errors"

	"github.com/Jx2f/CayleyRand/pkg/perm"
	"github.com/Jx2f/CayleyRand/pkg/uintx"
)

const delaySize = 32

// Initial state of the delay line, shared by every engine instance.
var delayInit = [delaySize]uint64{
	0x57ea5e79bb7b58dc, 0x03198e239ff8ba7d,
	0x7779bd2aeb666379, 0x5de2cf0e048781c3,
	0x89faeceacabe7821, 0xbf5a9b43b4e550ae,
	0x24e37a696814c67e, 0x45e199269f6ad385,
	0xf1df54ec42d8fba8, 0x089f41735277a11d,
	0x602c3888033edae0, 0xc71fee188d41a646,
	0x379121f47085af73, 0x9419d15d410b8eeb,
	0x760744f26b4c05b0, 0x3c68c1fb83c9a47e,
	0xa10d29f01e2f225e, 0x39792d6f9700f5cb,
	0xf5016c43b32d066c, 0x692d0a2cbcc083c0,
	0x229bfc31ea3beeff, 0xe9e6fd8bbf4033b8,
	0x74e8c4ad7bd95bd0, 0xeedb9cede270c79b,
	0x9abd1906822b22ac, 0x3b57c6458e330f89,
	0x7fc8519dfd26353d, 0x2874406cd5a54ba0,
	0x9fe7daf93fe577a2, 0x83d1c7bb3d29cd1f,
	0xbb2d2cbb68483f3d, 0x39af233d402946ec,
}

var (
	ErrSizeOutOfRange = errors.New("core: permutation size out of range")
	ErrGeneratorOrder = errors.New("core: generator order below the Landau bound")
)

// Engine walks the symmetric group S_n by alternately composing the current
// permutation with cached powers of a pair of maximal-order generators. The
// exponent of each step is read from a 32-word delay line of previous
// outputs.
type Engine struct {
	size  int
	order uint32
	power [2]*perm.PowerTable
	cur   perm.Perm

	delay [delaySize]uint64
	tail  int
	gen   int // generator parity, per instance
}

// NewEngine returns an unseeded engine over S_n, 1 <= n <= 64. The
// generator order is pinned to Landau's function of n.
func NewEngine(n int) (*Engine, error) {
	if n < 1 || n > perm.MaxSize {
		return nil, ErrSizeOutOfRange
	}
	e := new(Engine)
	e.size = n
	e.order = landau[n]
	e.cur, _ = perm.Identity(n)
	e.delay = delayInit
	return e, nil
}

// ChooseGenerators picks a pseudo-random generator pair of maximal order:
// the first uniform over S_n, the second uniform over the odd permutations.
// A pair sharing a fixed point is rejected, which is unlikely but possible.
func (e *Engine) ChooseGenerators(src perm.Source) {
	p, _ := perm.Identity(e.size)
	e.power[0] = new(perm.PowerTable)
	e.power[1] = new(perm.PowerTable)
	for {
		for {
			p.Randomize(src)
			e.power[0].Init(p)
			if uint32(e.power[0].Order()) == e.order {
				break
			}
		}
		for {
			p.RandomizeOdd(src)
			e.power[1].Init(p)
			if uint32(e.power[1].Order()) == e.order {
				break
			}
		}
		if !sharedFixedPoint(e.power[0].At(1), e.power[1].At(1)) {
			return
		}
	}
}

func sharedFixedPoint(g0, g1 perm.Perm) bool {
	for i := 0; i < g0.Size(); i++ {
		if g0.At(i) == uint8(i) && g1.At(i) == uint8(i) {
			return true
		}
	}
	return false
}

// SeedRandom seeds the engine with pseudo-random generators and a
// pseudo-random initial permutation. src is consulted only here, never
// while stepping.
func (e *Engine) SeedRandom(src perm.Source) {
	e.ChooseGenerators(src)
	e.cur.Randomize(src)
}

// SeedFixed seeds the engine with the generators of reverse lexicographic
// ranks g0 and g1 and the initial permutation of rank seed, each reduced
// mod n!. Both generators must have maximal order.
func (e *Engine) SeedFixed(g0, g1, seed uintx.Uintx) error {
	for i, r := range []uintx.Uintx{g0, g1} {
		p, err := perm.FromRank(e.size, r)
		if err != nil {
			return err
		}
		e.power[i] = perm.NewPowerTable(p)
		if uint32(e.power[i].Order()) != e.order {
			return ErrGeneratorOrder
		}
	}
	p, err := perm.FromRank(e.size, seed)
	if err != nil {
		return err
	}
	e.cur = p
	return nil
}

// step advances the walk. The exponent is the delay-line tail reduced mod
// the generator order; the reduction is very slightly biased since the
// order does not divide 2^64, but the residue is negligible for orders
// near two million. The generator alternates every step.
func (e *Engine) step() {
	exp := e.delay[e.tail] % uint64(e.order)
	e.cur.Mul(e.power[e.gen].At(int(exp)))
	e.gen ^= 1
}

// Generator returns generator i, either 0 or 1. The engine must be seeded.
func (e *Engine) Generator(i int) perm.Perm { return e.power[i].At(1) }

// Perm returns the current permutation. Treat as read-only.
func (e *Engine) Perm() perm.Perm { return e.cur }

// Size returns the permutation size n.
func (e *Engine) Size() int { return e.size }

// Order returns the generator order, Landau's function of n.
func (e *Engine) Order() uint32 { return e.order }
