package engine

import (
	"polis/internal/rules"
)

// ActionKind is one of the four things a player can do with a hand option.
type ActionKind string

const (
	ActionNone    ActionKind = ""
	ActionBuild   ActionKind = "build"
	ActionFree    ActionKind = "free"    // build the option using the free-build ability
	ActionSell    ActionKind = "sell"    // discard the option for money
	ActionSpecial ActionKind = "special" // bury the option to build the next city special
)

// Decision is a player's pending choice for the current turn. It is
// recorded at submission time and applied only once every seated player
// has decided.
type Decision struct {
	Action     ActionKind
	Option     *rules.BuildOption
	TradeLeft  int
	TradeRight int
}

// BattleResult is one battle token, recorded at the end of an age for each
// neighbor whose military power differed.
type BattleResult struct {
	AgeIndex  int             `json:"age"`
	Direction rules.Direction `json:"direction"`
	Victory   bool            `json:"victory"`
}

// Value returns the token's score under the age it was fought in.
func (b BattleResult) Value(age *rules.Age) int {
	if b.Victory {
		return age.VictoryScore
	}
	return age.DefeatScore
}

// Player is one seat of a game. Seats form a fixed ring; the seat index is
// the player's position in Game.Players and never changes after joining.
type Player struct {
	ID      string
	Name    string
	City    string
	Variant string

	Money         int
	SpecialsBuilt int // specials with order below this are built
	Buildings     []*rules.Building
	Hand          []*rules.BuildOption
	Battles       []BattleResult
	FreeBuildAges map[int]bool // age index → free-build ability spent

	Decision Decision

	game *Game
	seat int
}

// Seat returns the player's fixed position in the ring.
func (p *Player) Seat() int { return p.seat }

// Left returns the ring neighbor one seat before this player.
func (p *Player) Left() *Player {
	n := len(p.game.Players)
	return p.game.Players[(p.seat-1+n)%n]
}

// Right returns the ring neighbor one seat after this player.
func (p *Player) Right() *Player {
	n := len(p.game.Players)
	return p.game.Players[(p.seat+1)%n]
}

// CountByKind returns the number of owned buildings of the given kind.
func (p *Player) CountByKind(kind rules.Kind) int {
	n := 0
	for _, b := range p.Buildings {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// Specials returns the number of city specials built.
func (p *Player) Specials() int { return p.SpecialsBuilt }

// Defeats returns the number of battle defeats suffered.
func (p *Player) Defeats() int {
	n := 0
	for _, b := range p.Battles {
		if !b.Victory {
			n++
		}
	}
	return n
}

// HasBuilding reports whether the player owns a building with that name.
func (p *Player) HasBuilding(name string) bool {
	for _, b := range p.Buildings {
		if b.Name == name {
			return true
		}
	}
	return false
}

// Military returns the player's total military power.
func (p *Player) Military() int {
	power := 0
	for _, e := range p.activeEffects() {
		power += e.Military
	}
	return power
}

// handOption returns the first hand entry for the named building, nil when
// absent.
func (p *Player) handOption(building string) *rules.BuildOption {
	for _, o := range p.Hand {
		if o.Building.Name == building {
			return o
		}
	}
	return nil
}

// removeFromHand removes the given option (by identity) from the hand.
func (p *Player) removeFromHand(option *rules.BuildOption) bool {
	for i, o := range p.Hand {
		if o == option {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// activeEffects returns every effect currently applying to the player:
// built city specials first, then building effects.
func (p *Player) activeEffects() []*rules.Effect {
	var effects []*rules.Effect
	for _, s := range p.game.Catalog.SpecialsFor(p.City, p.Variant) {
		if s.Order < p.SpecialsBuilt {
			effect := s.Effect
			effects = append(effects, &effect)
		}
	}
	for _, b := range p.Buildings {
		effects = append(effects, &b.Effect)
	}
	return effects
}
