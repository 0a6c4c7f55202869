package ref

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/corvidlabs/riskmcts/internal/generics"
	"github.com/corvidlabs/riskmcts/internal/risk"
)

// computeHash builds a structural, content-addressed hash of the board:
// every territory's owner/troops, turn/phase bookkeeping and cards, fed
// through FNV-64a in a stable (sorted-key) order so that two boards built
// through different move sequences but landing in the same position hash
// identically. Grounded on the teacher engine's normalizedHash in
// internal/state/repeats.go, which walks a sorted piece list through the
// same hasher for the same reason.
func (b *Board) computeHash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeUint64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeInt := func(v int) { writeUint64(uint64(int64(v))) }

	for id := range generics.SortedKeys(b.territories) {
		t := b.territories[id]
		writeInt(int(id))
		writeInt(int(t.Owner))
		writeInt(t.Troops)
	}
	writeInt(int(b.turn))
	writeInt(int(b.phase))
	writeInt(b.reinforcementsLeft)
	if b.fortifyUsed {
		writeInt(1)
	} else {
		writeInt(0)
	}
	if b.pending != nil {
		writeInt(int(b.pending.player))
		writeInt(int(b.pending.from))
		writeInt(int(b.pending.to))
	}
	for p, held := range b.cards {
		writeInt(p)
		for _, c := range held {
			writeInt(c)
		}
	}
	writeInt(b.tradeInsDone)

	return h.Sum64()
}

// Hash implements risk.GameState.
func (b *Board) Hash() uint64 {
	b.buildDerivedIfNeeded()
	return b.derived.hash
}
