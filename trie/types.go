package trie

import (
	"errors"
	"fmt"
)

// AlphabetSize is the number of child slots per node ('a'..'z').
const AlphabetSize = 26

// Sentinel errors for trie operations.
var (
	// ErrNilTrie indicates a method was called on a nil *Trie.
	ErrNilTrie = errors.New("trie: trie is nil")

	// ErrTrieFreed indicates a mutation after Free.
	ErrTrieFreed = errors.New("trie: trie is freed")

	// ErrInvalidCharacter indicates a byte outside 'a'..'z'.
	ErrInvalidCharacter = errors.New("trie: invalid character")

	// ErrWordNotFound indicates Remove was asked for a word that is not stored.
	ErrWordNotFound = errors.New("trie: word not found")
)

// node is one trie vertex; children[i] is the branch for 'a'+i.
type node struct {
	children [AlphabetSize]*node
	end      bool
}

// leaf reports whether n has no children.
func (n *node) leaf() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}

	return true
}

// Trie is a lowercase prefix tree. root represents the empty prefix and is
// never pruned; a nil root marks a freed trie.
type Trie struct {
	root  *node
	nodes int // live nodes including root
	words int // stored words
}

// New returns an empty trie holding only the root node.
func New() *Trie {
	return &Trie{root: &node{}, nodes: 1}
}

// slot maps a byte to its child index, or -1 when out of range.
func slot(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}

	return int(b - 'a')
}

// validate checks every byte of word against the alphabet.
func validate(word string) error {
	for i := 0; i < len(word); i++ {
		if slot(word[i]) < 0 {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, word[i], i)
		}
	}

	return nil
}

// check validates the receiver for mutating calls.
func (t *Trie) check() error {
	if t == nil {
		return ErrNilTrie
	}
	if t.root == nil {
		return ErrTrieFreed
	}

	return nil
}
