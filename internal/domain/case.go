package domain

const (
	CategoryOmniChannel   = 1
	CategoryReassignment  = 0
	OriginBackLineRequest = "Back Line Request"
	LanguageEnglish       = "English"
)

type Case struct {
	Subject   string
	CreatedAt TimePoint
	Category  int
	Origin    string
	Language  string
}

// IsEligible is a hard filter: front-line English omni-channel cases only.
func (c Case) IsEligible() bool {
	return c.Category == CategoryOmniChannel &&
		c.Origin != OriginBackLineRequest &&
		c.Language == LanguageEnglish
}

func FilterEligibleCases(cases []Case) []Case {
	eligible := make([]Case, 0, len(cases))
	for _, c := range cases {
		if c.IsEligible() {
			eligible = append(eligible, c)
		}
	}

	return eligible
}
