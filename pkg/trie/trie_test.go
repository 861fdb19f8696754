package trie

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewTrieWithMetadata verifies that a new node is correctly initialized.
func TestNewTrieWithMetadata(t *testing.T) {
	root := NewTrieWithMetadata(strPtr("root"))
	assert.NotNil(t, root, "Trie should not be nil upon creation")
	assert.Equal(t, "root", *root.Metadata(), "Metadata should match the initialization value")
	assert.Equal(t, 0, root.Depth(), "Depth should be initialized to 0 for a new Trie")
	assert.True(t, root.IsRoot(), "A detached node should be a root")
}

// TestAttachChild verifies lazy child creation and parent bookkeeping.
func TestAttachChild(t *testing.T) {
	root := NewTrieWithMetadata(strPtr(""))
	child := NewTrieWithMetadata(strPtr("child"))
	attached := root.AttachChild(child, ONE)

	assert.Equal(t, child, attached, "Should return the attached child")
	assert.False(t, attached.IsRoot(), "Attached child should no longer be a root")
	assert.Equal(t, 1, child.Pos(), "Child's position should be 1 for slot ONE")
	assert.Equal(t, 1, child.Depth(), "Child's depth should increment by 1 from the parent")
}

// TestAttachChildKeepsExisting verifies that an occupied slot is never replaced.
func TestAttachChildKeepsExisting(t *testing.T) {
	root := NewTrieWithMetadata(strPtr(""))
	first := root.AttachChild(NewTrieWithMetadata(strPtr("first")), ZERO)
	second := root.AttachChild(NewTrieWithMetadata(strPtr("second")), ZERO)

	assert.Equal(t, first, second, "Attaching to an occupied slot should return the existing child")
	assert.Equal(t, "first", *root.Child(ZERO).Metadata(), "Existing child must not be replaced")
}

// TestChild verifies retrieving children from specific positions.
func TestChild(t *testing.T) {
	root := NewTrieWithMetadata(strPtr(""))
	child := NewTrieWithMetadata(strPtr("child"))
	root.AttachChild(child, ZERO)

	assert.Equal(t, child, root.Child(ZERO), "Should retrieve the child at position ZERO")
	assert.Nil(t, root.Child(ONE), "Should return nil for an empty child position")
}

// TestSetMetadata verifies that a path node can be promoted to carry metadata.
func TestSetMetadata(t *testing.T) {
	node := NewTrieWithMetadata[string](nil)
	assert.Nil(t, node.Metadata(), "A path node should carry no metadata")

	node.SetMetadata(strPtr("promoted"))
	assert.Equal(t, "promoted", *node.Metadata(), "Metadata should be replaceable")
}

// TestForEachChild checks that ForEachChild iterates over all children correctly.
func TestForEachChild(t *testing.T) {
	root := NewTrieWithMetadata(strPtr(""))
	root.AttachChild(NewTrieWithMetadata(strPtr("")), ZERO)
	root.AttachChild(NewTrieWithMetadata(strPtr("")), ONE)

	var count int
	root.ForEachChild(func(t *BinaryTrie[string]) {
		count++
	})

	assert.Equal(t, 2, count, "ForEachChild should iterate over both children")
}

// TestForEachStepDown verifies that each node in the trie can be visited and modified.
func TestForEachStepDown(t *testing.T) {
	visitedPaths := ""
	var traverseAndVerify func(tr *BinaryTrie[string])

	paths := []string{"001", "0010", "1010", "101010101010", "111111"}

	root := NewTrieWithMetadata(strPtr(""))
	generateTrieAs(paths, root)

	// mark each visited node
	root.ForEachStepDown(func(tr *BinaryTrie[string]) {
		tr.SetMetadata(strPtr("visited"))
	}, nil)

	traverseAndVerify = func(tr *BinaryTrie[string]) {
		if tr == nil {
			return
		}
		tr.ForEachChild(func(c *BinaryTrie[string]) {
			visitedPaths += strconv.Itoa(c.Pos())
			assert.Contains(t, *c.Metadata(), "visited", "Metadata should contain 'visited'")
			traverseAndVerify(c)
		})
	}
	traverseAndVerify(root)
	assert.Equal(t, "001010101010101011111", visitedPaths, "Visited paths should match expected sequence")
}

// TestForEachStepUp verifies the upward walk stops at the root.
func TestForEachStepUp(t *testing.T) {
	root := NewTrieWithMetadata(strPtr(""))
	child := root.AttachChild(NewTrieWithMetadata(strPtr("")), ONE)
	grandchild := child.AttachChild(NewTrieWithMetadata(strPtr("")), ZERO)

	var depths []int
	grandchild.ForEachStepUp(func(tr *BinaryTrie[string]) {
		depths = append(depths, tr.Depth())
	}, nil)

	assert.Equal(t, []int{2, 1}, depths, "Upward walk should visit the node and its parent but not the root")
}

// TestPath verifies that the path from the root to a specific node is correctly identified.
func TestPath(t *testing.T) {
	root := NewTrieWithMetadata(strPtr(""))
	child := root.AttachChild(NewTrieWithMetadata(strPtr("")), ONE)
	grandchild := child.AttachChild(NewTrieWithMetadata(strPtr("")), ZERO)

	path := grandchild.Path()
	expectedPath := []int{1, 0}
	assert.Equal(t, expectedPath, path, "Path should correctly represent the positions from root to grandchild")
}

// TestLeafPaths verifies that unique paths in a trie are correctly identified and returned.
func TestLeafPaths(t *testing.T) {
	paths := []string{"001", "0010", "1010", "101010", "1111"}
	root := NewTrieWithMetadata(strPtr(""))

	generateTrieAs(paths, root)

	expectedPaths := [][]int{
		{0, 0, 1, 0},
		{1, 0, 1, 0, 1, 0},
		{1, 1, 1, 1},
	}
	actualPaths := root.LeafPaths()
	assert.ElementsMatch(t, expectedPaths, actualPaths, "Unique paths should match the expected paths")
}

// TestLeafs verifies leaf collection matches leaf paths.
func TestLeafs(t *testing.T) {
	paths := []string{"00", "01", "11"}
	root := NewTrieWithMetadata(strPtr(""))
	generateTrieAs(paths, root)

	leafs := root.Leafs()
	assert.Len(t, leafs, 3, "Should collect one leaf per distinct path")
	for _, leaf := range leafs {
		assert.True(t, leaf.IsLeaf(), "Collected nodes must be leafs")
	}
}

// generateTrieAs constructs a trie based on provided paths of '0' and '1' runes.
func generateTrieAs(paths []string, root *BinaryTrie[string]) {
	for _, path := range paths {
		current := root
		for _, bit := range path {
			metadata := strPtr(string(bit) + " <- " + *current.Metadata())
			if bit == '0' {
				current = current.AttachChild(NewTrieWithMetadata(metadata), ZERO)
			} else {
				current = current.AttachChild(NewTrieWithMetadata(metadata), ONE)
			}
		}
	}
}

func strPtr(s string) *string {
	return &s
}
