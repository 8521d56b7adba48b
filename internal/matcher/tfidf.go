// Package matcher maps free-text requests onto the service catalog using
// TF-IDF vectors and cosine similarity.
package matcher

import (
	"math"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

type vector map[int]float64

// Index is fitted once on the catalog descriptions and is read-only after
// construction, so Match is safe for concurrent use.
type Index struct {
	entries []Entry
	vocab   map[string]int
	idf     []float64
	docs    []vector
}

func NewIndex(entries []Entry) *Index {
	idx := &Index{
		entries: entries,
		vocab:   make(map[string]int),
	}

	tokenized := make([][]string, len(entries))
	var df []int
	for i, e := range entries {
		tokens := Tokenize(e.Description)
		tokenized[i] = tokens

		seen := make(map[int]bool, len(tokens))
		for _, tok := range tokens {
			id, ok := idx.vocab[tok]
			if !ok {
				id = len(idx.vocab)
				idx.vocab[tok] = id
				df = append(df, 0)
			}
			if !seen[id] {
				seen[id] = true
				df[id]++
			}
		}
	}

	n := float64(len(entries))
	idx.idf = make([]float64, len(df))
	for id, d := range df {
		idx.idf[id] = math.Log((1+n)/(1+float64(d))) + 1
	}

	idx.docs = make([]vector, len(entries))
	for i, tokens := range tokenized {
		idx.docs[i] = idx.weigh(tokens)
	}
	return idx
}

// Len is the number of catalog entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Match returns the entry most similar to query and its cosine score.
// Ties go to the earliest entry. A query sharing no vocabulary scores 0
// against everything and so returns the first entry.
func (idx *Index) Match(query string) (Entry, float64) {
	if len(idx.entries) == 0 {
		return Entry{}, 0
	}
	q := idx.weigh(Tokenize(query))

	best, bestScore := 0, -1.0
	for i, d := range idx.docs {
		if s := dot(q, d); s > bestScore {
			best, bestScore = i, s
		}
	}
	return idx.entries[best], bestScore
}

// weigh builds an L2-normalised tf-idf vector. Terms outside the fitted
// vocabulary are dropped.
func (idx *Index) weigh(tokens []string) vector {
	v := make(vector)
	for _, tok := range tokens {
		if id, ok := idx.vocab[tok]; ok {
			v[id]++
		}
	}
	var norm float64
	for id, tf := range v {
		w := tf * idx.idf[id]
		v[id] = w
		norm += w * w
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	for id := range v {
		v[id] /= norm
	}
	return v
}

func dot(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var s float64
	for id, w := range a {
		s += w * b[id]
	}
	return s
}

// Tokenize lowercases text, splits it into runs of two or more word
// characters and drops English stop words.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := stopWords[tok]; !stop {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
