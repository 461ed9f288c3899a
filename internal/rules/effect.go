package rules

// PlayerState is the observable slice of a player that effects are
// evaluated against: building counts by kind, specials built and battle
// defeats suffered.
type PlayerState interface {
	CountByKind(Kind) int
	Specials() int
	Defeats() int
}

// Effect is the capability bag attached to a building or city special.
// Every field is independently optional; most effects use only one.
type Effect struct {
	// Production acts as an income. Money is credited once, when the
	// effect enters play. When more than one resource is listed, at most
	// one of them is produced per payment.
	Production *Cost `json:"production,omitempty"`

	Score    int `json:"score,omitempty"`
	Military int `json:"military,omitempty"`

	// Sciences is a menu: exactly one entry is credited at scoring time.
	Sciences []string `json:"sciences,omitempty"`

	// Trade terms offered to neighbors in the flagged directions. The
	// cost's Money is the per-unit price, its resources the tradeable set.
	Trade      *Cost `json:"trade,omitempty"`
	LeftTrade  bool  `json:"left_trade,omitempty"`
	RightTrade bool  `json:"right_trade,omitempty"`

	// Money per building of KindPaid owned locally and/or by each neighbor.
	KindPaid                 Kind `json:"kind_paid,omitempty"`
	MoneyPerLocalBuilding    int  `json:"money_per_local_building,omitempty"`
	MoneyPerNeighborBuilding int  `json:"money_per_neighbor_building,omitempty"`

	// Score per building of the listed kinds, locally and/or per neighbor.
	KindsScored              []Kind `json:"kinds_scored,omitempty"`
	ScorePerLocalBuilding    int    `json:"score_per_local_building,omitempty"`
	ScorePerNeighborBuilding int    `json:"score_per_neighbor_building,omitempty"`

	// Money/score per city special built locally or by each neighbor.
	MoneyPerLocalSpecial    int `json:"money_per_local_special,omitempty"`
	ScorePerLocalSpecial    int `json:"score_per_local_special,omitempty"`
	MoneyPerNeighborSpecial int `json:"money_per_neighbor_special,omitempty"`
	ScorePerNeighborSpecial int `json:"score_per_neighbor_special,omitempty"`

	ScorePerNeighborDefeat int `json:"score_per_neighbor_defeat,omitempty"`

	// One-shot/rule-bending flags.
	FreeBuilding    bool `json:"free_building,omitempty"`
	ExtraTurn       bool `json:"extra_turn,omitempty"`
	UseDiscards     bool `json:"use_discards,omitempty"`
	CopyPersonality bool `json:"copy_personality,omitempty"`
}

// Money evaluates the instantaneous money this effect yields for its owner
// given both current neighbors.
func (e *Effect) Money(owner, left, right PlayerState) int {
	m := 0
	if e.Production != nil {
		m += e.Production.Money
	}
	if e.KindPaid != "" {
		m += e.MoneyPerLocalBuilding * owner.CountByKind(e.KindPaid)
		m += e.MoneyPerNeighborBuilding * (left.CountByKind(e.KindPaid) + right.CountByKind(e.KindPaid))
	}
	m += e.MoneyPerLocalSpecial * owner.Specials()
	m += e.MoneyPerNeighborSpecial * (left.Specials() + right.Specials())
	return m
}

// Points evaluates the score points this effect yields for its owner given
// both current neighbors. Science menus are not counted here; they go
// through the science optimizer.
func (e *Effect) Points(owner, left, right PlayerState) int {
	pts := e.Score
	for _, kind := range e.KindsScored {
		pts += e.ScorePerLocalBuilding * owner.CountByKind(kind)
		pts += e.ScorePerNeighborBuilding * (left.CountByKind(kind) + right.CountByKind(kind))
	}
	pts += e.ScorePerLocalSpecial * owner.Specials()
	pts += e.ScorePerNeighborSpecial * (left.Specials() + right.Specials())
	pts += e.ScorePerNeighborDefeat * (left.Defeats() + right.Defeats())
	return pts
}
