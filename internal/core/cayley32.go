package core

import "github.com/Jx2f/CayleyRand/pkg/uintx"

// Reverse lexicographic ranks of the built-in fixed generator pair. These
// are published for reproducibility; a deployment that cares about reverse
// engineering should generate and keep its own pair.
var (
	gen0 = mustHex("350F1C2036E12600512A8400920E")
	gen1 = mustHex("EEDC82EE2D472B430D13E5066CD5B")
)

func mustHex(s string) uintx.Uintx {
	x, err := uintx.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return x
}

// mixKeys are the 64-bit output mixing constants. Entries 22-31 repeat
// entries 0-9; changing the layout changes every output word, so treat the
// table as frozen.
var mixKeys = [delaySize]uint64{
	0x0d7e11b44d8e8161, 0x3d43a82e494a9972,
	0x71b941e4c1557ec7, 0x56bf34559248d37c,
	0x445db48764d3c5c8, 0xd2b96a4ba16b5c56,
	0xb2bbaa127223e3da, 0x3232fd669cd2918e,
	0x331d3d1bd619e971, 0x74b3680644295539,
	0xb491addfb1af0f5b, 0xa3caa6455b313d54,
	0xb6257e45a726fa52, 0xd413cd54747f43b1,
	0x706873eeb3583e05, 0x3fd0d37b7f24589c,
	0xc04cb886d76abce0, 0x3ecfdec3d519aedd,
	0xbb4f1bccb25c3e51, 0xb1b80c550732d50f,
	0x7c5015c795b5c8c2, 0xb2d8190706c770a8,
	0x0d7e11b44d8e8161, 0x3d43a82e494a9972,
	0x71b941e4c1557ec7, 0x56bf34559248d37c,
	0x445db48764d3c5c8, 0xd2b96a4ba16b5c56,
	0xb2bbaa127223e3da, 0x3232fd669cd2918e,
	0x331d3d1bd619e971, 0x74b3680644295539,
}

// Cayley32 is the 64-bit output variant of the engine over S_32. Seed it
// with Seed (fixed generators), SeedFixed (caller-supplied generators) or
// SeedRandom (pseudo-random generators) before drawing from Rand.
type Cayley32 struct {
	Engine
}

func NewCayley32() *Cayley32 {
	c := new(Cayley32)
	e, _ := NewEngine(32)
	c.Engine = *e
	return c
}

// Seed seeds with the built-in fixed generator pair and the initial
// permutation of reverse lexicographic rank seed.
func (c *Cayley32) Seed(seed uintx.Uintx) error {
	return c.SeedFixed(gen0, gen1, seed)
}

// Rand returns the next 64 pseudo-random bits: advance the permutation,
// mix its image map into a word with the keyed products, then whiten the
// word against the oldest delay-line entry after writing the raw word in.
func (c *Cayley32) Rand() uint64 {
	c.step()
	var num uint64
	for i, k := range mixKeys {
		num ^= uint64(c.cur.At(i)) * k
	}
	c.delay[c.tail] = num
	c.tail = (c.tail + 1) % delaySize
	return num ^ c.delay[c.tail]
}
