// Package emit generates trampoline bodies from per-architecture
// templates.
//
// A trampoline does two things: it loads the address of its bound
// parameter block into the platform scratch register, and it jumps to
// the shared dispatch entry. The dispatch entry recovers the closure
// and bound values through that register, so every trampoline is the
// same short instruction sequence with two addresses baked in.
//
// The encoders are pure functions over byte slices and are available
// on every platform; TemplateEmitter selects the encoder for the
// compilation target at build time.
//
// # Scratch Registers
//
// On amd64 the parameter block address lands in r10 and the jump goes
// through r11; both are caller-saved on the System V and Windows
// calling conventions. On arm64 the pair is x16/x17, the
// intra-procedure-call registers reserved for exactly this kind of
// veneer.
//
// # Cache Coherence
//
// Stores to the instruction stream are not automatically visible to
// the fetch unit on arm64. Callers that execute freshly emitted
// trampolines on arm64 must synchronize the instruction cache for the
// storage block before the first call.
package emit
