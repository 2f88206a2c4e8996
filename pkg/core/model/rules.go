package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// RuleKind identifies one of the administrative rule types a delegation can
// attach to a referee
type RuleKind string

const (
	RuleForbiddenMunicipalities RuleKind = "RA_municipios_prohibidos"
	RulePreferredMunicipalities RuleKind = "RA_municipios_preferidos"
	RuleForbiddenDays           RuleKind = "RA_dias_prohibidos"
	RulePreferredDays           RuleKind = "RA_dias_preferidos"
	RuleForbiddenTeams          RuleKind = "RA_equipos_prohibidos"
	RulePreferredTeams          RuleKind = "RA_equipos_preferidos"
	RuleForbiddenLeagues        RuleKind = "RA_ligas_prohibidas"
	RulePreferredCompanions     RuleKind = "RA_companeros_preferidos"
	RuleObligatoryCompanions    RuleKind = "RA_companeros_obligatorios"
)

// Weekday is a day-of-week letter in the Mexican convention: L M X J V S D
// (lunes through domingo)
type Weekday string

const (
	WeekdayMonday    Weekday = "L"
	WeekdayTuesday   Weekday = "M"
	WeekdayWednesday Weekday = "X"
	WeekdayThursday  Weekday = "J"
	WeekdayFriday    Weekday = "V"
	WeekdaySaturday  Weekday = "S"
	WeekdaySunday    Weekday = "D"
)

// RuleParams is the typed payload of an internal rule. Exactly one concrete
// params type exists per rule kind; the engine dispatches on the concrete
// type, never on raw maps.
type RuleParams interface {
	Kind() RuleKind
}

// InternalRule is one per-referee administrative constraint with its audit
// trail. Disabled rules are kept for history but never evaluated.
type InternalRule struct {
	ID        string
	RefereeID string
	Enabled   bool
	UpdatedBy string
	UpdatedAt time.Time
	Reason    string
	Params    RuleParams
}

// Kind returns the rule kind, or empty when the rule carries no params
func (r *InternalRule) Kind() RuleKind {
	if r.Params == nil {
		return ""
	}
	return r.Params.Kind()
}

type ForbiddenMunicipalitiesParams struct {
	Municipalities []string `json:"municipios"`
}

func (ForbiddenMunicipalitiesParams) Kind() RuleKind { return RuleForbiddenMunicipalities }

type PreferredMunicipalitiesParams struct {
	Municipalities []string `json:"municipios"`
	PesoExtra      float64  `json:"pesoExtra"`
}

func (PreferredMunicipalitiesParams) Kind() RuleKind { return RulePreferredMunicipalities }

type ForbiddenDaysParams struct {
	Days []Weekday `json:"dias"`
}

func (ForbiddenDaysParams) Kind() RuleKind { return RuleForbiddenDays }

type PreferredDaysParams struct {
	Days []Weekday `json:"dias"`
}

func (PreferredDaysParams) Kind() RuleKind { return RulePreferredDays }

type ForbiddenTeamsParams struct {
	TeamIDs []string `json:"equipos"`
}

func (ForbiddenTeamsParams) Kind() RuleKind { return RuleForbiddenTeams }

type PreferredTeamsParams struct {
	TeamIDs   []string `json:"equipos"`
	PesoExtra float64  `json:"pesoExtra"`
}

func (PreferredTeamsParams) Kind() RuleKind { return RulePreferredTeams }

type ForbiddenLeaguesParams struct {
	LeagueIDs []string `json:"ligas"`
}

func (ForbiddenLeaguesParams) Kind() RuleKind { return RuleForbiddenLeagues }

type PreferredCompanionsParams struct {
	CompanionIDs []string `json:"companeros"`
	PesoExtra    float64  `json:"pesoExtra"`
}

func (PreferredCompanionsParams) Kind() RuleKind { return RulePreferredCompanions }

type ObligatoryCompanionsParams struct {
	CompanionIDs []string `json:"companeros"`
}

func (ObligatoryCompanionsParams) Kind() RuleKind { return RuleObligatoryCompanions }

// IsProhibition reports whether a rule kind is an absolute veto. Prohibitions
// always dominate preferences regardless of rule order.
func (k RuleKind) IsProhibition() bool {
	switch k {
	case RuleForbiddenMunicipalities, RuleForbiddenDays, RuleForbiddenTeams, RuleForbiddenLeagues:
		return true
	}
	return false
}

// DecodeRuleParams unmarshals a stored JSON params document into the typed
// params struct for the given kind
func DecodeRuleParams(kind RuleKind, raw []byte) (RuleParams, error) {
	decode := func(dst RuleParams) (RuleParams, error) {
		if len(raw) == 0 {
			return dst, nil
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, fmt.Errorf("failed to decode %s params: %w", kind, err)
		}
		return dst, nil
	}

	switch kind {
	case RuleForbiddenMunicipalities:
		return decode(&ForbiddenMunicipalitiesParams{})
	case RulePreferredMunicipalities:
		return decode(&PreferredMunicipalitiesParams{})
	case RuleForbiddenDays:
		return decode(&ForbiddenDaysParams{})
	case RulePreferredDays:
		return decode(&PreferredDaysParams{})
	case RuleForbiddenTeams:
		return decode(&ForbiddenTeamsParams{})
	case RulePreferredTeams:
		return decode(&PreferredTeamsParams{})
	case RuleForbiddenLeagues:
		return decode(&ForbiddenLeaguesParams{})
	case RulePreferredCompanions:
		return decode(&PreferredCompanionsParams{})
	case RuleObligatoryCompanions:
		return decode(&ObligatoryCompanionsParams{})
	default:
		return nil, fmt.Errorf("unknown rule kind %q", kind)
	}
}
