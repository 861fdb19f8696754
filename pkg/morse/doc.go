// Package morse decodes Morse code text into plain characters.
//
// The package is split into two halves. SymbolTree maps codes to characters
// by walking a binary trie: a dot descends left, a dash descends right, so
// resolving a code costs exactly one step per symbol with no hashing and no
// table scan. Decoder feeds the tree: it normalizes decorative Unicode
// variants into the canonical dot/dash/slash alphabet, folds long blank runs
// into word boundaries, tokenizes, and assembles the decoded string.
//
// Decoding is total. A token that cannot be resolved, whatever the reason,
// degrades to '?' and never interrupts the rest of the message.
package morse
