// internal/scoring/education.go
package scoring

import (
	"encoding/json"
	"strings"
)

// EducationLevel is the closed set of education categories the engine scores.
type EducationLevel int

const (
	EducationUnrecognized EducationLevel = iota
	EducationHSCoursework
	EducationSomeCollege
	EducationAssociateOrCertificate
	EducationBachelors
	EducationMasters
	EducationPhD
)

var educationLabels = map[EducationLevel]string{
	EducationUnrecognized:           "Unrecognized",
	EducationHSCoursework:           "HS + significant coursework",
	EducationSomeCollege:            "Some College",
	EducationAssociateOrCertificate: "Associate's/Certificate",
	EducationBachelors:              "Bachelor's",
	EducationMasters:                "Master's",
	EducationPhD:                    "PhD",
}

var educationFoundation = map[EducationLevel]float64{
	EducationUnrecognized:           0.0,
	EducationHSCoursework:           0.2,
	EducationSomeCollege:            0.3,
	EducationAssociateOrCertificate: 0.4,
	EducationBachelors:              0.6,
	EducationMasters:                0.8,
	EducationPhD:                    1.0,
}

// EducationLevels lists the recognized levels from lowest to highest.
func EducationLevels() []EducationLevel {
	return []EducationLevel{
		EducationHSCoursework,
		EducationSomeCollege,
		EducationAssociateOrCertificate,
		EducationBachelors,
		EducationMasters,
		EducationPhD,
	}
}

// ParseEducationLevel maps a label to its level. Matching ignores case and
// surrounding whitespace. ok is false for labels outside the table, in which
// case EducationUnrecognized is returned.
func ParseEducationLevel(label string) (level EducationLevel, ok bool) {
	label = strings.TrimSpace(label)
	for _, l := range EducationLevels() {
		if strings.EqualFold(label, educationLabels[l]) {
			return l, true
		}
	}
	return EducationUnrecognized, false
}

func (l EducationLevel) String() string {
	if s, ok := educationLabels[l]; ok {
		return s
	}
	return educationLabels[EducationUnrecognized]
}

// MarshalJSON renders the level by label.
func (l EducationLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts a label; unknown labels decode to EducationUnrecognized.
func (l *EducationLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l, _ = ParseEducationLevel(s)
	return nil
}

// EducationFoundation is total over EducationLevel; unrecognized scores 0.0.
func EducationFoundation(level EducationLevel) float64 {
	return educationFoundation[level]
}
