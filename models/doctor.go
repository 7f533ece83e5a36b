package models

import (
	"encoding/json"
	"strings"
)

// SpecialtyList is a doctor's specialties normalized to an ordered list of
// strings. The Doctor Directory is inconsistent about the wire shape: the
// field arrives as a plain string, a list of strings, or a JSON-encoded
// string-of-a-list. Normalization happens once at ingestion so no caller has
// to re-parse it.
type SpecialtyList []string

func (s *SpecialtyList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*s = normalizeSpecialties(asList)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}

	// A string payload may itself be a JSON-encoded list.
	trimmed := strings.TrimSpace(asString)
	if strings.HasPrefix(trimmed, "[") {
		var nested []string
		if err := json.Unmarshal([]byte(trimmed), &nested); err == nil {
			*s = normalizeSpecialties(nested)
			return nil
		}
	}

	*s = normalizeSpecialties([]string{asString})
	return nil
}

func normalizeSpecialties(raw []string) SpecialtyList {
	out := make(SpecialtyList, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// MatchesFilter reports whether any specialty contains token,
// case-insensitively. An empty token matches everything.
func (s SpecialtyList) MatchesFilter(token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return true
	}
	for _, specialty := range s {
		if strings.Contains(strings.ToLower(specialty), token) {
			return true
		}
	}
	return false
}

// DoctorSummary is the directory's view of a doctor, enough for roster
// filtering and the confirmation screen.
type DoctorSummary struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Specialties     SpecialtyList `json:"specialties"`
	ConsultationFee float64       `json:"consultation_fee"`
	ExperienceYears int           `json:"experience"`
	Rating          float64       `json:"rating"`
	IsActive        bool          `json:"is_active"`
}
