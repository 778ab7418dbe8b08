// Package trie implements a 26-ary prefix tree over lowercase ASCII words
// with membership only (no associated values) and compacting deletion.
//
// What:
//
//   - Insert walks one child per byte of the word, creating missing nodes,
//     and marks the final node as a word end.
//   - Search walks the same path and reports the terminal word-end flag.
//   - Remove clears the word-end flag, then prunes every node that is left
//     with no children and no word-end marker as the recursion unwinds.
//     Only nodes that are stored words, or prefixes of stored words, remain.
//   - WordsWithPrefix and HasPrefix answer prefix queries; words come back
//     in lexicographic order because children are indexed a..z.
//
// Alphabet:
//
//   - Only the bytes 'a'..'z' are accepted. Uppercase, digits, punctuation
//     and non-ASCII bytes are rejected with ErrInvalidCharacter (Insert,
//     Remove) or a false result (Search, HasPrefix); nothing is normalized.
//   - The empty word is legal and is stored on the root.
//
// Atomicity:
//
//   - Insert validates the whole word before creating any node, so a
//     rejected word leaves the trie untouched.
//
// Complexity (k = len(word)):
//
//   - Insert, Search, Remove, HasPrefix: O(k).
//   - WordsWithPrefix: O(k + size of the subtree).
//   - Free: O(nodes).
//
// Errors:
//
//   - ErrNilTrie           method called on a nil *Trie.
//   - ErrTrieFreed         mutation attempted after Free.
//   - ErrInvalidCharacter  word contains a byte outside 'a'..'z'.
//   - ErrWordNotFound      Remove of a word that is not stored.
package trie
