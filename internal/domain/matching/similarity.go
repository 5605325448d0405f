package matching

import (
	"math"
	"strings"
)

// Similarity scores two text fragments in [0,1] using the default config.
// The first argument is the (usually short) requirement field, the second
// the document it is checked against.
func Similarity(field, document string) float64 {
	return similarityWith(field, document, DefaultConfig())
}

func similarityWith(field, document string, cfg Config) float64 {
	nf := normalizeCompact(field)
	nd := normalizeCompact(document)
	if nf == "" || nd == "" {
		return 0
	}

	// Short canonical phrases ("5 years", "bachelor of science") that appear
	// verbatim in the document are a full match; TF-IDF sparsity would
	// otherwise dilute them.
	if strings.Contains(nd, nf) {
		return 1
	}

	stop := cfg.StopWords
	if stop == nil {
		stop = DefaultStopWords
	}

	vf := termFreqs(nf, cfg.Bigrams, stop)
	vd := termFreqs(nd, cfg.Bigrams, stop)
	if len(vf) == 0 || len(vd) == 0 {
		// Degenerate corpus: only stop words survived.
		return 0
	}

	return cosineTFIDF(vf, vd)
}

// termFreqs counts unigram (and optionally bigram) occurrences in
// normalized text, excluding stop words.
func termFreqs(norm string, bigrams bool, stop map[string]bool) map[string]float64 {
	words := strings.Fields(norm)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if stop[w] {
			continue
		}
		kept = append(kept, w)
	}

	freqs := make(map[string]float64, len(kept)*2)
	for _, w := range kept {
		freqs[w]++
	}
	if bigrams {
		for i := 0; i+1 < len(kept); i++ {
			freqs[kept[i]+" "+kept[i+1]]++
		}
	}
	return freqs
}

// cosineTFIDF computes cosine similarity between two documents weighted by
// smoothed inverse document frequency over the two-document corpus.
func cosineTFIDF(a, b map[string]float64) float64 {
	const numDocs = 2.0

	idf := func(term string) float64 {
		df := 0.0
		if a[term] > 0 {
			df++
		}
		if b[term] > 0 {
			df++
		}
		return math.Log((1+numDocs)/(1+df)) + 1
	}

	var dot, normA, normB float64
	for term, tf := range a {
		w := tf * idf(term)
		normA += w * w
		if tfB := b[term]; tfB > 0 {
			dot += w * (tfB * idf(term))
		}
	}
	for term, tf := range b {
		w := tf * idf(term)
		normB += w * w
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
