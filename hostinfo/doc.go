// Package hostinfo answers host capability queries: the CPU name, the
// detected feature set, and the identifier of the active
// code-generation backend.
//
// Feature strings list enabled features first as +name tokens, then
// explicitly disabled features as -name tokens, comma-joined. Listing
// every minus after every plus keeps a broadly implied feature from
// silently re-enabling one that was explicitly turned off.
package hostinfo
