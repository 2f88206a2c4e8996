package designator

import (
	"github.com/arbitrosmx/designador/pkg/core/model"
)

// SuggestBatch runs the suggestion pipeline over a list of matches in the
// caller-supplied order, folding a usage accumulator across the sequence so
// referees and pairs spread over the batch before any repeat.
//
// Matches must be processed strictly sequentially: each result feeds the
// accumulator the next match is evaluated against. Output order preserves
// input order, one result per key.
//
// Batch mode re-validates schedule and recent-team conflicts per match,
// exactly like single-match mode.
func SuggestBatch(snap *Snapshot, keys []model.MatchKey) []model.SuggestedTerna {
	st := NewBatchState()
	results := make([]model.SuggestedTerna, 0, len(keys))

	for _, key := range keys {
		if match, ok := snap.MatchByID(key.MatchID); ok && match.HasTernaAssigned() {
			results = append(results, model.SuggestedTerna{
				Key:    key,
				Reason: model.ReasonAlreadyHasAssignment,
			})
			continue
		}

		terna := SuggestMatch(snap, key, st)
		st.Record(terna)
		results = append(results, terna)
	}

	return results
}
