package bridge

import (
	"sync"

	"github.com/npillmayer/hbshape"
)

// Handle is an opaque reference to an opened font. The zero value is the
// "no handle" sentinel.
//
// A handle packs a slot number and the slot's generation at the time the font
// has been registered. Slots are reused after a font is destroyed, but with a
// new generation, so stale handles never reach a newer font.
type Handle uint64

func makeHandle(slot int, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(slot+1))
}

func (h Handle) slot() int {
	return int(uint32(h)) - 1
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

// entry holds one registered font. Calls for the same handle serialize on mu.
type entry struct {
	mu   sync.Mutex
	gen  uint32
	font *hbshape.Font
}

// handleTable maps handles to fonts.
//
// Thread-safe.
type handleTable struct {
	mu    sync.Mutex
	slots []*entry
	free  []int
	live  int
}

// register stores f and returns a fresh handle for it.
func (t *handleTable) register(f *hbshape.Font) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	var slot int
	if n := len(t.free); n > 0 {
		slot = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		slot = len(t.slots)
		t.slots = append(t.slots, &entry{gen: 1})
	}
	e := t.slots[slot]
	e.mu.Lock()
	e.font = f
	gen := e.gen
	e.mu.Unlock()
	t.live++
	return makeHandle(slot, gen)
}

// lookup returns the entry for h with its mutex held, or nil for unknown and
// stale handles. Callers have to unlock the entry.
func (t *handleTable) lookup(h Handle) *entry {
	if h == 0 {
		return nil
	}
	slot := h.slot()
	t.mu.Lock()
	if slot < 0 || slot >= len(t.slots) {
		t.mu.Unlock()
		return nil
	}
	e := t.slots[slot]
	t.mu.Unlock()
	e.mu.Lock()
	if e.gen != h.generation() || e.font == nil {
		e.mu.Unlock()
		return nil
	}
	return e
}

// unregister removes h from the table and returns its font, or nil if h is
// unknown or stale.
func (t *handleTable) unregister(h Handle) *hbshape.Font {
	e := t.lookup(h)
	if e == nil {
		return nil
	}
	f := e.font
	e.font = nil
	e.gen++
	e.mu.Unlock()
	t.mu.Lock()
	t.free = append(t.free, h.slot())
	t.live--
	t.mu.Unlock()
	return f
}

// count returns the number of registered fonts.
func (t *handleTable) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}
