package trie

// Insert stores word.
// The word is validated first; on ErrInvalidCharacter no node is created.
// Inserting a word twice is a no-op the second time.
// Complexity: O(len(word)).
func (t *Trie) Insert(word string) error {
	if err := t.check(); err != nil {
		return err
	}
	if err := validate(word); err != nil {
		return err
	}
	n := t.root
	for i := 0; i < len(word); i++ {
		s := slot(word[i])
		if n.children[s] == nil {
			n.children[s] = &node{}
			t.nodes++
		}
		n = n.children[s]
	}
	if !n.end {
		n.end = true
		t.words++
	}

	return nil
}

// walk follows prefix from the root and returns the node it ends on, or nil
// if a byte is out of range or a branch is missing.
func (t *Trie) walk(prefix string) *node {
	if t == nil || t.root == nil {
		return nil
	}
	n := t.root
	for i := 0; i < len(prefix); i++ {
		s := slot(prefix[i])
		if s < 0 || n.children[s] == nil {
			return nil
		}
		n = n.children[s]
	}

	return n
}

// Search reports whether word is stored.
// Complexity: O(len(word)).
func (t *Trie) Search(word string) bool {
	n := t.walk(word)

	return n != nil && n.end
}

// HasPrefix reports whether at least one stored word starts with prefix.
// Complexity: O(len(prefix)).
func (t *Trie) HasPrefix(prefix string) bool {
	n := t.walk(prefix)
	// every surviving non-root node leads to a word end
	return n != nil && (n.end || !n.leaf())
}

// Remove deletes word and prunes the nodes that no longer lead to a word.
// Returns ErrWordNotFound if word is not stored, ErrInvalidCharacter if it
// cannot be a stored word.
// Complexity: O(len(word)).
func (t *Trie) Remove(word string) error {
	if err := t.check(); err != nil {
		return err
	}
	if err := validate(word); err != nil {
		return err
	}
	removed := false
	t.remove(t.root, word, 0, &removed)
	if !removed {
		return ErrWordNotFound
	}
	t.words--

	return nil
}

// remove descends to the terminal node of word and clears its end flag.
// It reports whether n is now dead (no end flag, no children) so the caller
// can drop it; removed is set once the end flag is actually cleared.
func (t *Trie) remove(n *node, word string, depth int, removed *bool) bool {
	if n == nil {
		return false
	}
	if depth == len(word) {
		if !n.end {
			return false
		}
		n.end = false
		*removed = true

		return n.leaf()
	}
	s := slot(word[depth])
	if !t.remove(n.children[s], word, depth+1, removed) {
		return false
	}
	n.children[s] = nil
	t.nodes--

	return !n.end && n.leaf()
}

// Free tears the trie down post-order. Afterwards Insert and Remove return
// ErrTrieFreed and queries report nothing stored.
// Freeing a nil or already freed trie is a no-op.
// Complexity: O(nodes).
func (t *Trie) Free() {
	if t == nil || t.root == nil {
		return
	}
	destroy(t.root)
	t.root = nil
	t.nodes = 0
	t.words = 0
}

// destroy unlinks every descendant of n, children before parents.
func destroy(n *node) {
	for i, c := range n.children {
		if c != nil {
			destroy(c)
			n.children[i] = nil
		}
	}
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	if t == nil {
		return 0
	}

	return t.words
}

// NodeCount returns the number of live nodes, root included.
// An empty trie reports 1; a freed or nil trie reports 0.
func (t *Trie) NodeCount() int {
	if t == nil {
		return 0
	}

	return t.nodes
}

// WordsWithPrefix returns every stored word starting with prefix, in
// lexicographic order. An empty prefix lists the whole trie.
// Complexity: O(len(prefix) + subtree size).
func (t *Trie) WordsWithPrefix(prefix string) []string {
	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	var out []string
	buf := []byte(prefix)
	collect(n, &buf, &out)

	return out
}

// collect appends every word below n in a..z order; buf holds the path.
func collect(n *node, buf *[]byte, out *[]string) {
	if n.end {
		*out = append(*out, string(*buf))
	}
	for i, c := range n.children {
		if c == nil {
			continue
		}
		*buf = append(*buf, byte('a'+i))
		collect(c, buf, out)
		*buf = (*buf)[:len(*buf)-1]
	}
}
