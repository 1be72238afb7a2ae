package match

import (
	"sort"
)

// Confidence thresholds for suggestions.
const (
	// DefaultMinScore is the minimum score for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultLimit is the number of suggestions offered.
	DefaultLimit = 3
)

// Candidate is a known name scored against a query.
type Candidate struct {
	Name string

	// Scoring components
	QualifiedScore float64 // similarity of the normalized qualified names
	SimpleScore    float64 // similarity of the normalized simple names

	// Score is the best of the components.
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against query. Returns candidates
// sorted by score (descending), then by name.
func RankCandidates(query string, known []string) CandidateList {
	queryQualified := NormalizeIdent(query)
	querySimple := NormalizeIdent(SimpleName(query))

	candidates := make(CandidateList, 0, len(known))
	for _, name := range known {
		if name == query {
			continue
		}

		c := Candidate{
			Name:           name,
			QualifiedScore: Similarity(queryQualified, NormalizeIdent(name)),
			SimpleScore:    Similarity(querySimple, NormalizeIdent(SimpleName(name))),
		}
		c.Score = max(c.QualifiedScore, c.SimpleScore)

		candidates = append(candidates, c)
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to DefaultLimit known names close enough to query.
func Suggest(query string, known []string) []string {
	return RankCandidates(query, known).AboveThreshold(DefaultMinScore).Top(DefaultLimit).Names()
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}
	return names
}
