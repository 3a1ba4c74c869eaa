// Package bleveindex implements the msgsearch.Searcher interface on top of
// Bleve (github.com/blevesearch/bleve/v2), as an alternative to the built-in
// scan and postings strategies.
//
// The Bleve index is memory-only and built once at startup from the already
// built msgsearch.Index, so the service's lifecycle and immutability
// guarantees are unchanged. Each document stores the message's search text
// pre-tokenized with msgsearch.Tokenize and rejoined on spaces, analyzed by
// a plain whitespace tokenizer. That keeps Bleve's term inventory identical
// to the engine's own token sets (Bleve's unicode tokenizer would keep
// apostrophes and underscores inside a single word), so pre-normalized query
// tokens match with exact term queries. Results are sorted by document id,
// which encodes the corpus position, preserving deterministic upstream-order
// pagination.
//
// Example usage:
//
//	svc, err := msgsearch.NewService(
//	    msgsearch.WithSource(source),
//	    msgsearch.WithLogger(logger),
//	    msgsearch.WithSearcherFactory(bleveindex.NewSearcher),
//	)
package bleveindex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/whitespace"

	msgsearch "github.com/coregx/msgsearch"
)

const (
	textField    = "text"
	analyzerName = "searchtext"
)

// NewSearcher is a msgsearch.SearcherFactory building a memory-only Bleve
// index over the corpus. Pass it to msgsearch.WithSearcherFactory.
func NewSearcher(idx *msgsearch.Index) (msgsearch.Searcher, error) {
	im := bleve.NewIndexMapping()
	if err := im.AddCustomAnalyzer(analyzerName, map[string]interface{}{
		"type":      custom.Name,
		"tokenizer": whitespace.Name,
	}); err != nil {
		return nil, fmt.Errorf("failed to register analyzer: %w", err)
	}

	textMapping := bleve.NewTextFieldMapping()
	textMapping.Analyzer = analyzerName
	textMapping.Store = false
	textMapping.IncludeInAll = false

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt(textField, textMapping)
	im.DefaultMapping = docMapping

	b, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	batch := b.NewBatch()
	for pos := 0; pos < idx.Len(); pos++ {
		doc := map[string]interface{}{
			textField: strings.Join(msgsearch.Tokenize(idx.Message(pos).SearchText()), " "),
		}
		if err := batch.Index(docID(pos), doc); err != nil {
			return nil, fmt.Errorf("failed to index message %d: %w", pos, err)
		}
	}
	if err := b.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to apply index batch: %w", err)
	}

	return &searcher{index: b, size: idx.Len()}, nil
}

type searcher struct {
	index bleve.Index
	size  int
}

// Search implements msgsearch.Searcher with a conjunction of exact term
// queries, sorted by corpus position.
func (s *searcher) Search(tokens []string) ([]int, error) {
	conj := bleve.NewConjunctionQuery()
	for _, tok := range tokens {
		tq := bleve.NewTermQuery(tok)
		tq.SetField(textField)
		conj.AddQuery(tq)
	}

	req := bleve.NewSearchRequestOptions(conj, s.size, 0, false)
	req.SortBy([]string{"_id"})

	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	matches := make([]int, 0, len(res.Hits))
	for _, hit := range res.Hits {
		pos, err := strconv.Atoi(hit.ID)
		if err != nil {
			return nil, fmt.Errorf("unexpected document id %q: %w", hit.ID, err)
		}
		matches = append(matches, pos)
	}
	return matches, nil
}

// docID encodes a corpus position as a fixed-width id so that the _id sort
// order equals the numeric order.
func docID(pos int) string {
	return fmt.Sprintf("%012d", pos)
}
