package rules

// Score is the per-player score vector. The zero value is the additive
// identity.
type Score struct {
	Treasury    int `json:"treasury"`
	Military    int `json:"military"`
	Special     int `json:"special"`
	Civilian    int `json:"civilian"`
	Economy     int `json:"economy"`
	Science     int `json:"science"`
	Personality int `json:"personality"`
}

// Add returns the component-wise sum of two score vectors.
func (s Score) Add(o Score) Score {
	return Score{
		Treasury:    s.Treasury + o.Treasury,
		Military:    s.Military + o.Military,
		Special:     s.Special + o.Special,
		Civilian:    s.Civilian + o.Civilian,
		Economy:     s.Economy + o.Economy,
		Science:     s.Science + o.Science,
		Personality: s.Personality + o.Personality,
	}
}

// Total sums all seven dimensions.
func (s Score) Total() int {
	return s.Treasury + s.Military + s.Special + s.Civilian +
		s.Economy + s.Science + s.Personality
}
