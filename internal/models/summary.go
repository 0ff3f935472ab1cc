package models

// LengthProfile holds the generation token budgets for one requested
// summary length.
type LengthProfile struct {
	Name     string
	Exec     int
	Points   int
	Concepts int
	Takeaway int
}

const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// TitleTokens is the title budget; it does not depend on the profile.
const TitleTokens = 20

var lengthProfiles = map[string]LengthProfile{
	LengthShort:  {Name: LengthShort, Exec: 60, Points: 80, Concepts: 60, Takeaway: 40},
	LengthMedium: {Name: LengthMedium, Exec: 120, Points: 120, Concepts: 80, Takeaway: 60},
	LengthLong:   {Name: LengthLong, Exec: 200, Points: 180, Concepts: 120, Takeaway: 80},
}

// ResolveLength returns the named profile, falling back to medium for
// empty or unknown names.
func ResolveLength(name string) LengthProfile {
	if p, ok := lengthProfiles[name]; ok {
		return p
	}
	return lengthProfiles[LengthMedium]
}

type SummaryRequest struct {
	File     []byte
	Filename string
	Length   string
}

type SummaryResponse struct {
	Title             string `json:"title"`
	ExecutiveSummary  string `json:"executive_summary"`
	KeyPoints         string `json:"key_points"`
	ImportantConcepts string `json:"important_concepts"`
	FinalTakeaway     string `json:"final_takeaway"`
}
