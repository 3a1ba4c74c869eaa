package msgsearch

// Searcher answers token queries against a built Index. Implementations must
// return the ascending corpus positions of every message whose token set
// contains all of the query tokens (AND semantics, token equality — not raw
// substring containment). The engine never calls Search with an empty token
// slice.
//
// All built-in strategies are behaviorally indistinguishable; they differ
// only in lookup cost.
type Searcher interface {
	Search(tokens []string) ([]int, error)
}

// SearcherFactory builds a Searcher for a freshly built Index. It runs once,
// at startup, after the index build succeeds.
//
// Use this hook to plug a custom search backend:
//
//	svc, err := msgsearch.NewService(
//	    msgsearch.WithSource(source),
//	    msgsearch.WithSearcherFactory(myFactory),
//	)
type SearcherFactory func(idx *Index) (Searcher, error)

// NewScanSearcher returns the baseline strategy: a linear scan over the
// corpus checking each message's token set. O(corpus) per query, which is a
// deliberate simplicity trade-off for corpora in the low thousands.
func NewScanSearcher(idx *Index) (Searcher, error) {
	return &scanSearcher{idx: idx}, nil
}

type scanSearcher struct {
	idx *Index
}

func (s *scanSearcher) Search(tokens []string) ([]int, error) {
	var matches []int
scan:
	for pos := 0; pos < s.idx.Len(); pos++ {
		for _, tok := range tokens {
			if !s.idx.Contains(pos, tok) {
				continue scan
			}
		}
		matches = append(matches, pos)
	}
	return matches, nil
}

// NewPostingsSearcher returns the inverted-index strategy: query tokens are
// resolved through the token→positions table and intersected. Average O(1)
// per distinct token lookup, same results as the scan strategy.
func NewPostingsSearcher(idx *Index) (Searcher, error) {
	return &postingsSearcher{idx: idx}, nil
}

type postingsSearcher struct {
	idx *Index
}

func (s *postingsSearcher) Search(tokens []string) ([]int, error) {
	// Drive the intersection from the shortest postings list.
	shortest := s.idx.Postings(tokens[0])
	for _, tok := range tokens[1:] {
		postings := s.idx.Postings(tok)
		if len(postings) < len(shortest) {
			shortest = postings
		}
	}
	if len(shortest) == 0 {
		return nil, nil
	}

	var matches []int
candidates:
	for _, pos := range shortest {
		for _, tok := range tokens {
			if !s.idx.Contains(pos, tok) {
				continue candidates
			}
		}
		matches = append(matches, pos)
	}
	return matches, nil
}
