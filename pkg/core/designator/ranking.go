package designator

import (
	"hash/fnv"
	"sort"
	"strings"

	"github.com/arbitrosmx/designador/pkg/core/model"
)

// SortWithLeaguePriority orders candidates for selection. TDP leagues rank
// TDP-category candidates first, then by score; every league breaks score
// ties with a content hash of the referee id, keeping the order
// deterministic without introducing alphabetic name bias.
func SortWithLeaguePriority(cands []Candidate, league model.League) {
	tdp := IsTDPLeague(league)
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if tdp {
			aTDP := hasTDPMarker(a.Referee.Category)
			bTDP := hasTDPMarker(b.Referee.Category)
			if aTDP != bTDP {
				return aTDP
			}
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		aHash, bHash := idHash(a.Referee.ID), idHash(b.Referee.ID)
		if aHash != bHash {
			return aHash < bHash
		}
		return a.Referee.ID < b.Referee.ID
	})
}

// idHash is the deterministic tie-break over referee ids
func idHash(id string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return h.Sum64()
}

func hasTDPMarker(s string) bool {
	return strings.Contains(strings.ToUpper(s), "TDP")
}

func hasFeminineMarker(s string) bool {
	upper := strings.ToUpper(s)
	return strings.Contains(upper, "FEMENIL") || strings.Contains(upper, "FEM")
}

// IsTDPLeague classifies a league as Tercera División de Profesionales by
// its name, category, or slug
func IsTDPLeague(l model.League) bool {
	return hasTDPMarker(l.Name) || hasTDPMarker(l.Category) || hasTDPMarker(l.Slug)
}

// IsFeminineLeague classifies a league as a women's competition by its name,
// category, or slug
func IsFeminineLeague(l model.League) bool {
	return hasFeminineMarker(l.Name) || hasFeminineMarker(l.Category) || hasFeminineMarker(l.Slug)
}

// ShouldAssignAssessor reports whether a league gets an assessor in its
// suggested crew: TDP leagues only, excluding the feminine branch
func ShouldAssignAssessor(l model.League) bool {
	return IsTDPLeague(l) && !IsFeminineLeague(l)
}
