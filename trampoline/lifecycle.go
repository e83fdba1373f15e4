package trampoline

import (
	"go.uber.org/zap"

	nativebridge "github.com/quill-lang/native-bridge"
)

// isPermanent reports whether finalizer pins its record for the whole
// process: a concrete type, the canonical singleton instance of its
// type, or a generic template equal to its own canonical wrapper. The
// set of such values is bounded and long-lived, so their trampolines
// are leaked rather than tracked.
func isPermanent(v nativebridge.Value) bool {
	return v.ConcreteType() || v.Singleton() || v.TemplateWrapper()
}

// classify stamps the record's lifetime and, for tracked records, wires
// the collector callback. The registry keeps only the finalizer's
// identity, so tracking never delays the finalizer's collection. Every
// record sharing one finalizer hangs off the same key behind a single
// collector registration.
func (m *Manager) classify(rec *Record, finalizer nativebridge.Value) {
	if isPermanent(finalizer) {
		rec.permanent = true
		return
	}

	key := identityOf(finalizer)
	m.mu.Lock()
	entries := m.registry[key]
	m.registry[key] = append(entries, rec)
	m.mu.Unlock()
	if len(entries) == 0 {
		m.gc.Register(finalizer, func() { m.reclaim(key) })
	}
}

// reclaim is the collector callback for one finalizer key. The key must
// exist: a callback firing with no registry entry means the record
// bookkeeping is broken, and continuing would double-free or leak. Each
// reclaimed record gives back its native storage first, then its
// parameter block.
func (m *Manager) reclaim(key uintptr) {
	m.mu.Lock()
	recs, ok := m.registry[key]
	if ok {
		delete(m.registry, key)
	}
	m.mu.Unlock()
	if !ok {
		panic("trampoline: collector fired for a finalizer with no registry entry")
	}

	for _, rec := range recs {
		m.arena.Free(rec.params.storage)
		m.releaseParams(rec.params)
	}
	Logger().Debug("trampolines reclaimed", zap.Int("records", len(recs)))
}
