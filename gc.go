package symbol

// Hooks for embedding Symbols in values managed by a host cycle
// collector (for example a scripting-language VM that traces object
// graphs). A Symbol holds no child references and owns nothing, so both
// hooks are no-ops; they exist so Symbol satisfies the host's interfaces
// without wrapper types.

// Traceable is the object-graph contract a tracing collector expects:
// Trace must invoke visit for every managed value the receiver
// references.
type Traceable interface {
	Trace(visit func(child any))
}

// Finalizable is the teardown contract a collector expects: Finalize
// runs once before the receiver's storage is reclaimed.
type Finalizable interface {
	Finalize()
}

// Trace implements Traceable. A Symbol references only its canonical
// allocation, which is owned by the intern table and must never be
// collected, so there is nothing to visit.
func (s Symbol) Trace(visit func(child any)) {}

// Finalize implements Finalizable. A Symbol owns nothing to release.
func (s Symbol) Finalize() {}
