package models

// Goal is the desire and OKR text for a pillar. One per pillar, overwritten on save.
type Goal struct {
	PillarID  string  `json:"pillarId"`
	Desire    string  `json:"desire"`
	OKR       *string `json:"okr"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// OKRText returns the OKR or the empty string.
func (g *Goal) OKRText() string {
	if g == nil || g.OKR == nil {
		return ""
	}
	return *g.OKR
}
