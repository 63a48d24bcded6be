package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Candidate is one entry of the ranking pool
type Candidate struct {
	UserID uuid.UUID
	Tags   []string
}

// NormalizeTags trims, drops blanks, de-duplicates and sorts a tag set
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// TagDistance is the Levenshtein distance between two tag sequences, where each tag
// is a single symbol and insertion, deletion and substitution all cost 1.
func TagDistance(a, b []string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

type scored struct {
	id       uuid.UUID
	key      string
	distance int
}

// RankBySimilarity orders the pool by tag distance to queryTags and returns at most k
// user IDs. The requester and untagged candidates are skipped; equal distances are
// ordered by ascending user ID.
func RankBySimilarity(queryTags []string, requesterID uuid.UUID, pool []Candidate, k int) []uuid.UUID {
	if k <= 0 {
		return []uuid.UUID{}
	}
	query := NormalizeTags(queryTags)

	ranked := make([]scored, 0, len(pool))
	for _, c := range pool {
		if c.UserID == requesterID {
			continue
		}
		tags := NormalizeTags(c.Tags)
		if len(tags) == 0 {
			continue
		}
		ranked = append(ranked, scored{
			id:       c.UserID,
			key:      c.UserID.String(),
			distance: TagDistance(query, tags),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].key < ranked[j].key
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	ids := make([]uuid.UUID, len(ranked))
	for i, r := range ranked {
		ids[i] = r.id
	}
	return ids
}
