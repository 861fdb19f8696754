package trie

import "fmt"

// ChildPos is an alias for int used to address the two child slots of a node.
type ChildPos = int

// Constants representing the two child positions in the trie.
const ZERO ChildPos = 0
const ONE ChildPos = 1

// BinaryTrie is a generic type representing a node in a binary trie.
// Each node owns at most two children and remembers its position in the
// parent, so the full root-to-node path can always be reconstructed.
type BinaryTrie[T any] struct {
	parent   *BinaryTrie[T]
	children [2]*BinaryTrie[T]
	metadata *T   // nil for plain path nodes
	pos      bool // this node's position in its parent (false = ZERO, true = ONE)
	depth    int
}

// NewTrieWithMetadata creates a new detached node holding the provided metadata.
func NewTrieWithMetadata[T any](metadata *T) *BinaryTrie[T] {
	return &BinaryTrie[T]{
		metadata: metadata,
	}
}

// Metadata returns the metadata stored at this node, or nil for a path node.
func (t *BinaryTrie[T]) Metadata() *T {
	return t.metadata
}

// SetMetadata stores metadata at this node, replacing whatever was there.
func (t *BinaryTrie[T]) SetMetadata(metadata *T) {
	t.metadata = metadata
}

// IsRoot checks if the current node is the root of the trie.
func (t *BinaryTrie[T]) IsRoot() bool {
	return t.parent == nil
}

// Pos returns this node's position in its parent, 0 or 1.
func (t *BinaryTrie[T]) Pos() int {
	if t.pos {
		return 1
	}
	return 0
}

// Depth returns the depth of the node in the trie. The root is at depth 0.
func (t *BinaryTrie[T]) Depth() int {
	return t.depth
}

// AttachChild returns the child at the given position, creating and linking
// the provided node there first if the slot is empty. The existing child
// always wins, so an already-built path is never replaced.
func (t *BinaryTrie[T]) AttachChild(child *BinaryTrie[T], at ChildPos) *BinaryTrie[T] {
	if t.children[at] != nil {
		return t.children[at]
	}
	child.parent = t
	child.pos = (at == ONE)
	child.depth = t.depth + 1
	t.children[at] = child
	return child
}

// Child returns the child node at the given position, or nil.
func (t *BinaryTrie[T]) Child(at ChildPos) *BinaryTrie[T] {
	if t == nil {
		panic("[BUG] Child: node must not be nil")
	}
	return t.children[at]
}

// IsLeaf checks if the node has no children.
func (t *BinaryTrie[T]) IsLeaf() bool {
	return t.children[0] == nil && t.children[1] == nil
}

// ForEachChild applies a function to each non-nil child of the node.
// It returns the original node t.
func (t *BinaryTrie[T]) ForEachChild(f func(t *BinaryTrie[T])) *BinaryTrie[T] {
	if t.children[0] != nil {
		f(t.children[0])
	}
	if t.children[1] != nil {
		f(t.children[1])
	}
	return t
}

// ForEachStepDown recursively applies a function to each descendant node,
// as long as a (while) condition holds. Pass nil as while to visit everything.
// It returns the original node t.
func (t *BinaryTrie[T]) ForEachStepDown(f func(t *BinaryTrie[T]), while func(t *BinaryTrie[T]) bool) *BinaryTrie[T] {
	t.ForEachChild(func(child *BinaryTrie[T]) {
		if while == nil || while(t) {
			f(child)
			child.ForEachStepDown(f, while)
		}
	})
	return t
}

// ForEachStepUp applies a function to each node from this node towards the
// root, as long as a (while) condition holds. The root itself is not visited.
// It returns the original node t.
func (t *BinaryTrie[T]) ForEachStepUp(f func(*BinaryTrie[T]), while func(*BinaryTrie[T]) bool) *BinaryTrie[T] {
	current := t
	for current.parent != nil && (while == nil || while(current)) {
		f(current)
		current = current.parent
	}
	return t
}

// Path returns the positions from the root to this node as a slice of 0's
// and 1's. Reverse it if you need the path from the node to the root.
func (t *BinaryTrie[T]) Path() []int {
	path := []int{}
	t.ForEachStepUp(func(tr *BinaryTrie[T]) {
		path = append([]int{tr.Pos()}, path...)
	}, nil)
	return path
}

// Leafs collects every leaf node reachable from this node.
func (t *BinaryTrie[T]) Leafs() []*BinaryTrie[T] {
	leafs := []*BinaryTrie[T]{}
	t.ForEachStepDown(func(node *BinaryTrie[T]) {
		if node.IsLeaf() {
			leafs = append(leafs, node)
		}
	}, nil)
	return leafs
}

// LeafPaths generates the root-to-leaf path of every leaf, which is unique
// by definition.
func (t *BinaryTrie[T]) LeafPaths() [][]int {
	paths := [][]int{}
	t.ForEachStepDown(func(node *BinaryTrie[T]) {
		if node.IsLeaf() {
			paths = append(paths, node.Path())
		}
	}, nil)
	return paths
}

// String prints every leaf path, with an optional extra column per leaf.
func (t *BinaryTrie[T]) String(printOnLeaf func(*BinaryTrie[T]) string) {
	t.ForEachStepDown(func(node *BinaryTrie[T]) {
		if node.IsLeaf() {
			extra := ""
			if printOnLeaf != nil {
				extra = printOnLeaf(node)
			}
			fmt.Printf("%v %s\n", node.Path(), extra)
		}
	}, nil)
}
