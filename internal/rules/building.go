package rules

// Kind is a building category.
type Kind string

const (
	KindMilitary    Kind = "military"
	KindCivilian    Kind = "civilian"
	KindBasic       Kind = "basic"   // basic resource production
	KindComplex     Kind = "complex" // refined resource production
	KindEconomic    Kind = "economic"
	KindScientific  Kind = "scientific"
	KindPersonality Kind = "personality"
)

// Kinds lists every valid building kind.
var Kinds = []Kind{
	KindMilitary, KindCivilian, KindBasic, KindComplex,
	KindEconomic, KindScientific, KindPersonality,
}

// TradeableKinds are the kinds whose production neighbors may buy.
var TradeableKinds = []Kind{KindBasic, KindComplex}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Tradeable reports whether buildings of this kind offer their production
// to neighbors.
func (k Kind) Tradeable() bool {
	for _, t := range TradeableKinds {
		if k == t {
			return true
		}
	}
	return false
}

// Building is something a player can raise in their city.
type Building struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Cost   Cost   `json:"cost"`
	Effect Effect `json:"effect"`

	// FreeWith names a building that, once owned, makes this one free.
	FreeWith string `json:"free_with,omitempty"`
}

// ScoreVector returns this building's score contribution, bucketed by
// the building's kind. Military and scientific buildings score through
// battle tokens and the science optimizer instead.
func (b *Building) ScoreVector(owner, left, right PlayerState) Score {
	pts := b.Effect.Points(owner, left, right)
	if pts == 0 {
		return Score{}
	}
	switch b.Kind {
	case KindEconomic:
		return Score{Economy: pts}
	case KindPersonality:
		return Score{Personality: pts}
	default:
		return Score{Civilian: pts}
	}
}

// BuildOption makes a building available for play in a given age, gated by
// a minimum player count. Several options may reference the same building.
type BuildOption struct {
	Building   *Building
	AgeIndex   int
	MinPlayers int
}
