package msgsearch

import (
	"fmt"

	"github.com/coregx/msgsearch/model"
)

// indexEntry pairs a stored message with its precomputed token set.
type indexEntry struct {
	msg    model.Message
	tokens map[string]struct{}
}

// Index is the searchable in-memory representation of the fetched corpus.
// It holds every message in the order it was received from upstream, the
// tokenized searchable text of each message, and an inverted token→positions
// table. An Index is built exactly once and is read-only thereafter, so it is
// safe for unlimited concurrent lookups.
//
// The underlying order is stable across queries and defines deterministic
// pagination: position i always refers to the i-th message received.
type Index struct {
	entries  []indexEntry
	postings map[string][]int // token → ascending corpus positions
}

// BuildIndex consumes the full ordered collection of fetched messages and
// produces an Index with exactly one entry per message.
//
// The build is all-or-nothing: if any message fails validation the whole
// build fails and no partial index is returned.
func BuildIndex(messages []model.Message) (*Index, error) {
	idx := &Index{
		entries:  make([]indexEntry, 0, len(messages)),
		postings: make(map[string][]int),
	}

	for i, m := range messages {
		if err := m.Validate(); err != nil {
			return nil, NewErrorWithCause(ErrCodeIndex,
				fmt.Sprintf("invalid message at position %d", i), err)
		}

		tokens := Tokenize(m.SearchText())
		set := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, seen := set[tok]; seen {
				continue
			}
			set[tok] = struct{}{}
			idx.postings[tok] = append(idx.postings[tok], i)
		}

		idx.entries = append(idx.entries, indexEntry{msg: m, tokens: set})
	}

	return idx, nil
}

// Len returns the number of indexed messages.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Message returns the message stored at the given corpus position.
func (idx *Index) Message(pos int) model.Message {
	return idx.entries[pos].msg
}

// Messages returns the messages at the given corpus positions, in the given
// order. The result is never nil.
func (idx *Index) Messages(positions []int) []model.Message {
	out := make([]model.Message, 0, len(positions))
	for _, pos := range positions {
		out = append(out, idx.entries[pos].msg)
	}
	return out
}

// Contains reports whether the message at pos contains token as an exact
// element of its tokenized searchable text.
func (idx *Index) Contains(pos int, token string) bool {
	_, ok := idx.entries[pos].tokens[token]
	return ok
}

// Postings returns the ascending corpus positions of all messages containing
// the given token. The returned slice is shared and must not be mutated.
func (idx *Index) Postings(token string) []int {
	return idx.postings[token]
}
