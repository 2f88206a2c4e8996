package designator

// Built-in defaults for scoring and conflict detection
const (
	// DefaultTolerance is the permitted RCS deficit against the match
	// difficulty when a league has no valid tolerance configured
	DefaultTolerance = 1.0

	// NeutralPesoExtra is the no-op preference weight. Rules with a
	// missing or non-positive pesoExtra fall back to it.
	NeutralPesoExtra = 1.0

	// PreferredDayBonus is the fixed score bonus added when a match falls
	// on one of a referee's preferred weekdays
	PreferredDayBonus = 1.0

	// RecentTeamWindow is the number of matchdays (inclusive of the
	// current one) scanned for recent-team exposure
	RecentTeamWindow = 4
)
