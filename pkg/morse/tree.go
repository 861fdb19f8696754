package morse

import (
	"fmt"
	"strings"

	"github.com/khalid-nowaf/morsetree/pkg/trie"
)

// The two path-alphabet symbols. A dot descends into the ZERO child and a
// dash into the ONE child, so every code spells exactly one root-to-node path.
const Dot = '.'
const Dash = '-'

// Separator is the token that marks a word boundary in a tokenized message.
const Separator = "/"

// Placeholder is substituted for any token that cannot be resolved.
const Placeholder = '?'

// Symbol is one (character, code) pair registered in a SymbolTree.
type Symbol struct {
	Char rune
	Code string
}

// InvalidCodeError reports a code that is empty or strays outside the
// path alphabet. It can only happen while a table is being built, so it
// indicates a broken symbol definition rather than bad user input.
type InvalidCodeError struct {
	Char rune
	Code string
}

func (e *InvalidCodeError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("invalid code for %q: code must not be empty", e.Char)
	}
	return fmt.Sprintf("invalid code %q for %q: codes may only contain %q and %q", e.Code, e.Char, Dot, Dash)
}

// CollisionError reports an attempt to register a second character on a path
// that already terminates at another character.
type CollisionError struct {
	Char     rune
	Existing rune
	Code     string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("code %q for %q already resolves to %q", e.Code, e.Char, e.Existing)
}

// SymbolTree resolves Morse codes to characters by walking a binary trie,
// one path symbol at a time. The tree is built once, then treated as
// read-only, so concurrent lookups need no locking.
type SymbolTree struct {
	root *trie.BinaryTrie[rune]
}

// NewSymbolTree creates an empty tree. Use Insert to register symbols.
func NewSymbolTree() *SymbolTree {
	return &SymbolTree{root: newPathNode()}
}

// newPathNode creates a trie node used purely for path building, with no
// character assigned to it.
func newPathNode() *trie.BinaryTrie[rune] {
	return &trie.BinaryTrie[rune]{}
}

// childPos maps a path symbol to its child slot. The second return is false
// for anything outside the path alphabet.
func childPos(symbol rune) (trie.ChildPos, bool) {
	switch symbol {
	case Dot:
		return trie.ZERO, true
	case Dash:
		return trie.ONE, true
	}
	return trie.ZERO, false
}

// Insert walks the path spelled by code from the root, creating missing
// nodes, and stores char at the terminal node.
//
// Returns:
//   - *InvalidCodeError if code is empty or contains a symbol outside {., -}
//   - *CollisionError if the terminal node already holds a different character
//
// Re-inserting the same character on the same path is a no-op.
func (st *SymbolTree) Insert(char rune, code string) error {
	if code == "" {
		return &InvalidCodeError{Char: char, Code: code}
	}

	current := st.root
	for _, symbol := range code {
		pos, ok := childPos(symbol)
		if !ok {
			return &InvalidCodeError{Char: char, Code: code}
		}
		current = current.AttachChild(newPathNode(), pos)
	}

	if existing := current.Metadata(); existing != nil && *existing != char {
		return &CollisionError{Char: char, Existing: *existing, Code: code}
	}
	current.SetMetadata(&char)
	return nil
}

// Lookup walks the path spelled by token and returns the character stored at
// the terminal node. The boolean is false when the token is empty, contains
// a symbol outside the path alphabet, walks off the tree, or ends on a node
// with no character. The caller decides what to substitute; the decoder
// uses Placeholder.
func (st *SymbolTree) Lookup(token string) (rune, bool) {
	if token == "" {
		return 0, false
	}

	current := st.root
	for _, symbol := range token {
		pos, ok := childPos(symbol)
		if !ok {
			return 0, false
		}
		current = current.Child(pos)
		if current == nil {
			return 0, false
		}
	}

	if current.Metadata() == nil {
		return 0, false
	}
	return *current.Metadata(), true
}

// Symbols collects every registered (character, code) pair by walking the
// tree top-down. The order follows the trie traversal: shorter codes first
// within each branch, dot branches before dash branches.
func (st *SymbolTree) Symbols() []Symbol {
	symbols := []Symbol{}
	st.root.ForEachStepDown(func(node *trie.BinaryTrie[rune]) {
		if node.Metadata() == nil {
			return
		}
		symbols = append(symbols, Symbol{Char: *node.Metadata(), Code: pathToCode(node.Path())})
	}, nil)
	return symbols
}

// pathToCode converts a trie path back into its dot/dash spelling.
func pathToCode(path []int) string {
	var code strings.Builder
	for _, pos := range path {
		if pos == trie.ONE {
			code.WriteRune(Dash)
		} else {
			code.WriteRune(Dot)
		}
	}
	return code.String()
}
