package tldr

import (
	"context"
	"math"
	"sort"
)

// SearchLimit is the maximum number of results returned by a search.
const SearchLimit = 10

// Tokenizer splits text into normalized word tokens. The same tokenizer
// must be used to build a corpus and to query it.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Document is the text of one page file.
type Document struct {
	// Path is the slash-separated page path relative to the cache root.
	Path string
	Text string
}

// Corpus holds term statistics for every page in the cache.
type Corpus struct {
	// FileWords maps a document to its raw token counts.
	FileWords map[string]map[string]int `json:"fileWords"`

	// FileLengths maps a document to the Euclidean norm of its TF-IDF vector.
	FileLengths map[string]float64 `json:"fileLengths"`

	// InvertedIndex maps a token to the sorted documents containing it.
	InvertedIndex map[string][]string `json:"invertedIndex"`

	// AllTokens is the sorted vocabulary.
	AllTokens []string `json:"allTokens"`

	// TfIdf maps a document to the TF-IDF weight of each of its tokens.
	TfIdf map[string]map[string]float64 `json:"tfidf"`
}

// NewCorpus tokenizes the documents and computes term frequencies, the
// inverted index, TF-IDF weights and document norms.
func NewCorpus(docs []Document, tokenizer Tokenizer) *Corpus {
	c := &Corpus{
		FileWords:     make(map[string]map[string]int, len(docs)),
		FileLengths:   make(map[string]float64, len(docs)),
		InvertedIndex: make(map[string][]string),
		AllTokens:     []string{},
		TfIdf:         make(map[string]map[string]float64, len(docs)),
	}

	totals := make(map[string]int, len(docs))
	for _, doc := range docs {
		words, ok := c.FileWords[doc.Path]
		if !ok {
			words = make(map[string]int)
			c.FileWords[doc.Path] = words
		}
		for _, tok := range tokenizer.Tokenize(doc.Text) {
			words[tok]++
			totals[doc.Path]++
		}
	}

	for path, words := range c.FileWords {
		for tok := range words {
			c.InvertedIndex[tok] = append(c.InvertedIndex[tok], path)
		}
	}
	for tok, paths := range c.InvertedIndex {
		sort.Strings(paths)
		c.AllTokens = append(c.AllTokens, tok)
	}
	sort.Strings(c.AllTokens)

	for path, words := range c.FileWords {
		weights := make(map[string]float64, len(words))
		var sum float64
		for tok, count := range words {
			tf := float64(count) / float64(totals[path])
			w := tf * c.IDF(tok)
			weights[tok] = w
			sum += w * w
		}
		c.TfIdf[path] = weights
		c.FileLengths[path] = math.Sqrt(sum)
	}

	return c
}

// DocumentCount returns the number of documents in the corpus.
func (c *Corpus) DocumentCount() int {
	return len(c.FileWords)
}

// IDF returns ln(N / df) for a token, or 0 if no document contains it.
func (c *Corpus) IDF(token string) float64 {
	df := len(c.InvertedIndex[token])
	if df == 0 {
		return 0
	}
	return math.Log(float64(c.DocumentCount()) / float64(df))
}

// Rank scores every document containing at least one query token and
// returns up to limit results ordered by descending score. Equal scores are
// ordered by file path.
func (c *Corpus) Rank(tokens []string, limit int) []SearchResult {
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}

	scores := make(map[string]float64)
	for tok, qf := range freq {
		docs, ok := c.InvertedIndex[tok]
		if !ok {
			continue
		}
		weight := c.IDF(tok) * (1 + math.Log10(float64(qf)))
		for _, doc := range docs {
			scores[doc] += c.TfIdf[doc][tok] * weight
		}
	}

	results := make([]SearchResult, 0, len(scores))
	for doc, score := range scores {
		if norm := c.FileLengths[doc]; norm > 0 {
			score /= norm
		} else {
			score = 0
		}
		results = append(results, SearchResult{
			File:  doc,
			Page:  ParsePageName(doc),
			Score: score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].File < results[j].File
		}
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// SearchResult is a ranked search match.
type SearchResult struct {
	File  string  `json:"file"`
	Page  string  `json:"page"`
	Score float64 `json:"score"`

	// Targets lists where the page is available. Informational only.
	Targets []Target `json:"targets,omitempty"`
}

// SearchService provides free-text search over the page cache.
type SearchService interface {
	// Build rebuilds and persists the search corpus from the cache directory.
	Build(ctx context.Context) (*Corpus, error)

	// Search ranks pages against the query.
	// Returns ENOTFOUND if no corpus has been built.
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// Clear removes the persisted and in-memory corpus.
	Clear(ctx context.Context) error
}
