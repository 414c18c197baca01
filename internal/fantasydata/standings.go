package fantasydata

import (
	"encoding/json"

	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

// Standing field names as the service spells them.
const (
	FieldConference       = "Conference"
	FieldConferenceLosses = "ConferenceLosses"
	FieldConferenceWins   = "ConferenceWins"
	FieldDivision         = "Division"
	FieldDivisionLosses   = "DivisionLosses"
	FieldDivisionWins     = "DivisionWins"
	FieldLosses           = "Losses"
	FieldName             = "Name"
	FieldNetPoints        = "NetPoints"
	FieldPercentage       = "Percentage"
	FieldPointsAgainst    = "PointsAgainst"
	FieldPointsFor        = "PointsFor"
	FieldSeason           = "Season"
	FieldSeasonType       = "SeasonType"
	FieldTeam             = "Team"
	FieldTies             = "Ties"
	FieldTouchdowns       = "Touchdowns"
	FieldWins             = "Wins"
)

// StandingFields returns the exact key set of a standings record.
func StandingFields() schema.FieldSet {
	return schema.NewFieldSet(
		FieldConference, FieldConferenceLosses, FieldConferenceWins,
		FieldDivision, FieldDivisionLosses, FieldDivisionWins,
		FieldLosses, FieldName, FieldNetPoints, FieldPercentage,
		FieldPointsAgainst, FieldPointsFor, FieldSeason, FieldSeasonType,
		FieldTeam, FieldTies, FieldTouchdowns, FieldWins,
	)
}

// StandingsExpectation describes a season's standings payload: teams records
// (unchecked when teams <= 0), each with exactly StandingFields.
func StandingsExpectation(teams int) schema.Expectation {
	return schema.Expectation{
		Name:   ResourceStandings,
		Count:  teams,
		Fields: StandingFields(),
	}
}

// Standing is one team's record for a season.
type Standing struct {
	SeasonType       int     `json:"SeasonType"`
	Season           int     `json:"Season"`
	Conference       string  `json:"Conference"`
	Division         string  `json:"Division"`
	Team             string  `json:"Team"`
	Name             string  `json:"Name"`
	Wins             int     `json:"Wins"`
	Losses           int     `json:"Losses"`
	Ties             int     `json:"Ties"`
	Percentage       float64 `json:"Percentage"`
	PointsFor        int     `json:"PointsFor"`
	PointsAgainst    int     `json:"PointsAgainst"`
	NetPoints        int     `json:"NetPoints"`
	Touchdowns       int     `json:"Touchdowns"`
	DivisionWins     int     `json:"DivisionWins"`
	DivisionLosses   int     `json:"DivisionLosses"`
	ConferenceWins   int     `json:"ConferenceWins"`
	ConferenceLosses int     `json:"ConferenceLosses"`
}

type standingAlias Standing

// UnmarshalJSON decodes a record only if it carries exactly StandingFields.
func (s *Standing) UnmarshalJSON(data []byte) error {
	var rec map[string]json.RawMessage
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if err := schema.CheckRecord(0, rec, StandingFields()); err != nil {
		markResource(err)
		return err
	}
	return json.Unmarshal(data, (*standingAlias)(s))
}

// DecodeStandings decodes a standings array. In strict mode any key drift is a
// *schema.MismatchError; in lenient mode unknown keys are returned as extra.
func DecodeStandings(body []byte, mode DecodeMode) ([]Standing, []string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, err
	}

	fields := StandingFields()
	out := make([]Standing, 0, len(raw))
	extras := schema.NewFieldSet()
	for i, item := range raw {
		var rec map[string]json.RawMessage
		if err := json.Unmarshal(item, &rec); err != nil || rec == nil {
			return nil, nil, &schema.MismatchError{Resource: ResourceStandings, Index: i, Reason: "element is not an object"}
		}

		if mode == DecodeLenient {
			extra, err := schema.CheckRequired(i, rec, fields)
			if err != nil {
				markResource(err)
				return nil, nil, err
			}
			if len(extra) > 0 {
				// encoding/json matches keys case-insensitively, so an unknown
				// "wins" would otherwise overwrite Wins.
				extras.Insert(extra...)
				for _, k := range extra {
					delete(rec, k)
				}
				if item, err = json.Marshal(rec); err != nil {
					return nil, nil, err
				}
			}
		} else if err := schema.CheckRecord(i, rec, fields); err != nil {
			markResource(err)
			return nil, nil, err
		}

		var s standingAlias
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, nil, err
		}
		out = append(out, Standing(s))
	}

	if extras.Len() == 0 {
		return out, nil, nil
	}
	return out, schema.Sorted(extras), nil
}

func markResource(err error) {
	if mErr, ok := schema.AsMismatch(err); ok && mErr.Resource == "" {
		mErr.Resource = ResourceStandings
	}
}
