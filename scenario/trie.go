package scenario

import (
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mcore/config"
	"github.com/katalvlaran/mcore/report"
	"github.com/katalvlaran/mcore/trie"
)

var roundTripWords = []string{
	"alpha", "alphabet", "beta", "bet", "gamma", "game", "delta", "del",
	"epsilon", "zeta", "eta", "theta", "iota", "kappa", "lambda", "mu",
}

func trieCases() []Case {
	return []Case{
		{Name: "InitAndFree", Run: trieInitAndFree},
		{Name: "CatCar", Run: trieCatCar},
		{Name: "RoundTrip", Run: trieRoundTrip},
		{Name: "Alphabet", Run: trieAlphabet},
	}
}

func trieInitAndFree(r *report.Reporter, _ *config.Config) {
	tr := trie.New()
	r.Check("InitAndFree: root only", assert.Equal(r, 1, tr.NodeCount()))
	tr.Free()
	r.Check("InitAndFree: freed trie rejects insert", assert.ErrorIs(r, tr.Insert("a"), trie.ErrTrieFreed))
}

func trieCatCar(r *report.Reporter, _ *config.Config) {
	tr := trie.New()
	defer tr.Free()

	_ = tr.Insert("cat")
	_ = tr.Insert("car")
	r.Check("CatCar: remove cat", assert.NoError(r, tr.Remove("cat")))
	r.Check("CatCar: car still found", assert.True(r, tr.Search("car")))
	r.Check("CatCar: cat gone", assert.False(r, tr.Search("cat")))
	r.Check("CatCar: 't' pruned, 'ca' kept", assert.Equal(r, 4, tr.NodeCount()))
}

func trieRoundTrip(r *report.Reporter, _ *config.Config) {
	tr := trie.New()
	defer tr.Free()

	ok := true
	for _, w := range roundTripWords {
		ok = assert.NoError(r, tr.Insert(w)) && ok
	}
	r.Check("RoundTrip: inserts", ok)

	ok = true
	for _, w := range roundTripWords {
		ok = assert.True(r, tr.Search(w), w) && ok
	}
	r.Check("RoundTrip: all found", ok)

	ok = true
	for _, w := range roundTripWords {
		ok = assert.NoError(r, tr.Remove(w)) && ok
	}
	r.Check("RoundTrip: removes", ok)

	ok = true
	for _, w := range roundTripWords {
		ok = assert.False(r, tr.Search(w), w) && ok
	}
	r.Check("RoundTrip: none found", ok)
	r.Check("RoundTrip: back to root only", assert.Equal(r, 1, tr.NodeCount()))
}

func trieAlphabet(r *report.Reporter, _ *config.Config) {
	tr := trie.New()
	defer tr.Free()

	r.Check("Alphabet: uppercase rejected", assert.ErrorIs(r, tr.Insert("Cat"), trie.ErrInvalidCharacter))
	r.Check("Alphabet: digit rejected", assert.ErrorIs(r, tr.Insert("c4t"), trie.ErrInvalidCharacter))
	r.Check("Alphabet: rejected insert leaves no nodes", assert.Equal(r, 1, tr.NodeCount()))
	r.Check("Alphabet: search of invalid word", assert.False(r, tr.Search("Cat")))
}
