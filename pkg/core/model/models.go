package model

import "time"

// Role identifies a match official position
type Role string

const (
	RoleCentral  Role = "CENTRAL"
	RoleAA1      Role = "AA1"
	RoleAA2      Role = "AA2"
	RoleFourth   Role = "CUARTO"
	RoleAssessor Role = "ASESOR"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCentral, RoleAA1, RoleAA2, RoleFourth, RoleAssessor:
		return true
	}
	return false
}

// Status is a referee's administrative availability status
type Status string

const (
	StatusAvailable Status = "DISPONIBLE"
	StatusInjured   Status = "LESIONADO"
	StatusInactive  Status = "INACTIVO"
	StatusDoubtful  Status = "DUDOSO"
)

// Referee represents a registered match official
type Referee struct {
	ID           string
	Name         string
	Status       Status
	RolesAllowed []Role
	// Tier is the referee's skill category (e.g. "NACIONAL", "PRIMERA").
	// Competence scores derive from it unless RCSOverride is set.
	Tier        string
	RCSOverride *float64
	CanAssess   bool
	Category    string
	// DelegateID scopes the referee to a delegation. Empty means visible
	// to every delegation.
	DelegateID string
}

// HasRole returns true if the referee is cleared for the given role
func (r *Referee) HasRole(role Role) bool {
	for _, allowed := range r.RolesAllowed {
		if allowed == role {
			return true
		}
	}
	return false
}

// League represents a competition with its suggestion configuration
type League struct {
	ID       string
	Name     string
	Category string
	Slug     string
	// CentralTolerance and AssistantsTolerance are the permitted negative
	// gaps between a candidate's RCS and the match difficulty. Nil or
	// negative values fall back to the default tolerance.
	CentralTolerance    *float64
	AssistantsTolerance *float64
}

// MatchKey is the explicit hierarchical key of a match
type MatchKey struct {
	LeagueID   string
	GroupID    string
	MatchdayID string
	MatchID    string
}

// Matchday represents one round of fixtures within a group
type Matchday struct {
	ID      string
	GroupID string
	Number  int
	Date    time.Time
}

// Match represents a scheduled fixture, including any officials already
// committed by the write path
type Match struct {
	ID           string
	LeagueID     string
	GroupID      string
	MatchdayID   string
	HomeTeamID   string
	AwayTeamID   string
	Kickoff      time.Time
	Municipality string
	Venue        string
	// MDSOverride pins the match difficulty, bypassing team tiers
	MDSOverride *float64
	CentralID   *string
	AA1ID       *string
	AA2ID       *string
	FourthID    *string
	AssessorID  *string
}

// HasTernaAssigned returns true if any on-field official is already committed
func (m *Match) HasTernaAssigned() bool {
	return m.CentralID != nil || m.AA1ID != nil || m.AA2ID != nil
}

// OfficialRole returns the role a referee holds on this match, if any
func (m *Match) OfficialRole(refereeID string) (Role, bool) {
	switch {
	case m.CentralID != nil && *m.CentralID == refereeID:
		return RoleCentral, true
	case m.AA1ID != nil && *m.AA1ID == refereeID:
		return RoleAA1, true
	case m.AA2ID != nil && *m.AA2ID == refereeID:
		return RoleAA2, true
	case m.FourthID != nil && *m.FourthID == refereeID:
		return RoleFourth, true
	case m.AssessorID != nil && *m.AssessorID == refereeID:
		return RoleAssessor, true
	}
	return "", false
}

// Team represents a competing team
type Team struct {
	ID   string
	Name string
	// DifficultyTier feeds the match difficulty score. Nil means unknown,
	// which disables difficulty filtering for matches involving this team.
	DifficultyTier *int
}

// Reason is a terminal outcome code for one match suggestion
type Reason string

const (
	ReasonOK                        Reason = "OK"
	ReasonLeagueNotFound            Reason = "LEAGUE_NOT_FOUND"
	ReasonMatchNotFound             Reason = "MATCH_NOT_FOUND"
	ReasonAlreadyHasAssignment      Reason = "ALREADY_HAS_ASSIGNMENT"
	ReasonNoAvailableReferees       Reason = "NO_AVAILABLE_REFEREES"
	ReasonNoRoleCandidates          Reason = "NO_ROLE_CANDIDATES"
	ReasonNoCentralAfterMDSFilter   Reason = "NO_CENTRAL_AFTER_MDS_FILTER"
	ReasonNotEnoughAssistants       Reason = "NOT_ENOUGH_ASSISTANTS"
	ReasonNotEnoughAssistantsInUnit Reason = "NOT_ENOUGH_ASSISTANTS_IN_UNIT"
	ReasonBlockedBySchedule         Reason = "BLOCKED_BY_SCHEDULE_CONFLICT"
	ReasonBlockedByRecentTeam       Reason = "BLOCKED_BY_RECENT_TEAM_CONFLICT"
)

// Conflict records one detected clash between a candidate official and
// another match they are already committed to
type Conflict struct {
	RefereeID    string
	Role         Role
	OtherMatchID string
	OtherKickoff time.Time
	OtherHomeID  string
	OtherAwayID  string
	OtherVenue   string
}

// SuggestedTerna is the advisory output for one match. It is never persisted
// by this engine; the write path re-validates before committing.
type SuggestedTerna struct {
	Key MatchKey

	CentralID  *string
	AA1ID      *string
	AA2ID      *string
	AssessorID *string

	HasSuggestion bool
	Reason        Reason

	// Scoring metadata for the chosen central
	MDS                 *float64
	CentralRCS          *float64
	CentralTolerance    float64
	AssistantsTolerance float64

	// Diagnostic conflict detail, not part of the user-facing contract
	ScheduleConflicts   []Conflict
	RecentTeamConflicts []Conflict
	SameDayConflicts    []Conflict
}
