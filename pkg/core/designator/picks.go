package designator

// pickFirstNotUsed returns the best-ranked candidate not yet used in the
// batch, falling back to the top-ranked candidate when every one is used.
// Reuse within a batch is a soft preference, never a hard block.
func pickFirstNotUsed(cands []Candidate, st *BatchState) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	for _, c := range cands {
		if !st.IsUsed(c.Referee.ID) {
			return c, true
		}
	}
	return cands[0], true
}

// pickAssistantAvoidingPairs returns the best-ranked assistant that is both
// unused and does not repeat a pair with any already-fixed partner. Fallback
// is progressive: unused only, then top-ranked regardless.
func pickAssistantAvoidingPairs(cands []Candidate, st *BatchState, partners ...string) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	for _, c := range cands {
		if st.IsUsed(c.Referee.ID) {
			continue
		}
		if repeatsPair(st, c.Referee.ID, partners) {
			continue
		}
		return c, true
	}
	for _, c := range cands {
		if !st.IsUsed(c.Referee.ID) {
			return c, true
		}
	}
	return cands[0], true
}

func repeatsPair(st *BatchState, id string, partners []string) bool {
	for _, partner := range partners {
		if st.IsPairUsed(id, partner) {
			return true
		}
	}
	return false
}
