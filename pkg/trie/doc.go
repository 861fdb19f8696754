// ## Overview
// Package trie implements a generic binary trie (prefix tree) data structure.
// Each node owns at most two children addressed by position (ZERO or ONE),
// so every root-to-node path spells a word over a two-symbol alphabet.
// Nodes are attached lazily during a build phase and never detached; after
// construction the trie is read-only, which makes concurrent lookups safe
// without locking. Utility functions are provided to traverse the trie
// downwards and upwards and to collect leaf nodes and their paths.
//
// ## Example usage:
//
//	root := trie.NewTrieWithMetadata(strPtr("root"))
//
//	// attach children lazily; an existing child is returned as-is
//	left := root.AttachChild(trie.NewTrieWithMetadata(strPtr("left")), trie.ZERO)
//	right := root.AttachChild(trie.NewTrieWithMetadata(strPtr("right")), trie.ONE)
//
//	fmt.Println(left.Depth())  // Output: 1
//	fmt.Println(right.Pos())   // Output: 1
//	fmt.Println(root.IsLeaf()) // Output: false
//
//	// walk the whole trie and print each node's metadata
//	root.ForEachStepDown(func(t *trie.BinaryTrie[string]) {
//		fmt.Println(*t.Metadata())
//	}, nil)
//
// This package uses generics to allow the trie to store any type of metadata
// with each node.
package trie
