package cooccur

import "github.com/cognicore/rake/pkg/rake/phrase"

// FrequencyTable maps a word to the number of times it occurs across all
// candidate phrases. A missing word counts as zero.
type FrequencyTable map[string]int

// Count returns the occurrence count for a word, zero if absent.
func (t FrequencyTable) Count(word string) int {
	return t[word]
}

// BuildFrequency tallies every word occurrence across every phrase, repeats
// included.
func BuildFrequency(phrases []phrase.Phrase) FrequencyTable {
	table := make(FrequencyTable)
	for _, p := range phrases {
		for _, w := range p {
			table[w]++
		}
	}
	return table
}

// Graph is the word-by-word co-occurrence matrix over the candidate phrases.
// For each phrase, every ordered pair drawn from the Cartesian product of the
// phrase with itself is counted, self-pairs and repeated positions included.
// A word appearing twice in a phrase therefore contributes 2x2 self-pair
// counts for that phrase, not 2. The full matrix is kept
// intact, rather than reduced on the fly, so it stays available for other
// statistics; the ranking formula depends on these exact counts.
type Graph map[string]map[string]int

// BuildGraph counts co-occurrences over the given phrases.
func BuildGraph(phrases []phrase.Phrase) Graph {
	graph := make(Graph)
	for _, p := range phrases {
		for _, word := range p {
			row := graph[word]
			if row == nil {
				row = make(map[string]int, len(p))
				graph[word] = row
			}
			for _, coword := range p {
				row[coword]++
			}
		}
	}
	return graph
}

// Count returns the co-occurrence count for an ordered word pair, zero if
// absent.
func (g Graph) Count(word, coword string) int {
	return g[word][coword]
}

// DegreeTable maps a word to its degree: the sum of its co-occurrence counts
// with all words, itself included, across all candidate phrases. A missing
// word counts as zero.
type DegreeTable map[string]int

// Degree returns the degree for a word, zero if absent.
func (t DegreeTable) Degree(word string) int {
	return t[word]
}

// Degrees reduces the graph to per-word degrees by summing each row.
func (g Graph) Degrees() DegreeTable {
	table := make(DegreeTable, len(g))
	for word, row := range g {
		sum := 0
		for _, n := range row {
			sum += n
		}
		table[word] = sum
	}
	return table
}

// BuildDegree builds the co-occurrence graph and reduces it to degrees.
func BuildDegree(phrases []phrase.Phrase) DegreeTable {
	return BuildGraph(phrases).Degrees()
}
