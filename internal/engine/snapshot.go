package engine

import (
	"fmt"
	"sort"

	"polis/internal/rules"
)

// Snapshot is the serializable shape of a game aggregate. Catalog entries
// are referenced by name; restoring resolves them against the same catalog
// the game was created with.
type Snapshot struct {
	ID       string           `json:"id"`
	AgeIndex int              `json:"age"`
	Turn     int              `json:"turn"`
	Started  bool             `json:"started"`
	Finished bool             `json:"finished"`
	Discards []OptionRef      `json:"discards,omitempty"`
	Players  []PlayerSnapshot `json:"players"`
}

// OptionRef identifies a build option by its catalog coordinates.
type OptionRef struct {
	Building   string `json:"building"`
	Age        int    `json:"age"`
	MinPlayers int    `json:"min_players"`
}

// PlayerSnapshot is one seat's serializable state. Ring position is the
// slice index.
type PlayerSnapshot struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	City          string         `json:"city"`
	Variant       string         `json:"variant"`
	Money         int            `json:"money"`
	SpecialsBuilt int            `json:"specials_built"`
	Buildings     []string       `json:"buildings,omitempty"`
	Hand          []OptionRef    `json:"hand,omitempty"`
	Battles       []BattleResult `json:"battles,omitempty"`
	FreeBuildAges []int          `json:"free_build_ages,omitempty"`

	Action     ActionKind `json:"action,omitempty"`
	Picked     *OptionRef `json:"picked,omitempty"`
	TradeLeft  int        `json:"trade_left,omitempty"`
	TradeRight int        `json:"trade_right,omitempty"`
}

func optionRef(o *rules.BuildOption) OptionRef {
	return OptionRef{Building: o.Building.Name, Age: o.AgeIndex, MinPlayers: o.MinPlayers}
}

// Snapshot captures the full game state for persistence.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		ID:       g.ID,
		AgeIndex: g.AgeIndex,
		Turn:     g.Turn,
		Started:  g.Started,
		Finished: g.Finished,
	}
	for _, o := range g.Discards {
		snap.Discards = append(snap.Discards, optionRef(o))
	}
	for _, p := range g.Players {
		ps := PlayerSnapshot{
			ID:            p.ID,
			Name:          p.Name,
			City:          p.City,
			Variant:       p.Variant,
			Money:         p.Money,
			SpecialsBuilt: p.SpecialsBuilt,
			Battles:       p.Battles,
			Action:        p.Decision.Action,
			TradeLeft:     p.Decision.TradeLeft,
			TradeRight:    p.Decision.TradeRight,
		}
		for _, b := range p.Buildings {
			ps.Buildings = append(ps.Buildings, b.Name)
		}
		for _, o := range p.Hand {
			ps.Hand = append(ps.Hand, optionRef(o))
		}
		for age := range p.FreeBuildAges {
			ps.FreeBuildAges = append(ps.FreeBuildAges, age)
		}
		sort.Ints(ps.FreeBuildAges)
		if p.Decision.Option != nil {
			ref := optionRef(p.Decision.Option)
			ps.Picked = &ref
		}
		snap.Players = append(snap.Players, ps)
	}
	return snap
}

// RestoreGame rebuilds a game aggregate from a snapshot and the catalog it
// was created against.
func RestoreGame(snap Snapshot, catalog *rules.Catalog, config Config) (*Game, error) {
	g := NewGame(snap.ID, catalog, config)
	g.AgeIndex = snap.AgeIndex
	g.Turn = snap.Turn
	g.Started = snap.Started
	g.Finished = snap.Finished

	for _, ref := range snap.Discards {
		option, err := resolveOption(catalog, ref)
		if err != nil {
			return nil, err
		}
		g.Discards = append(g.Discards, option)
	}

	for seat, ps := range snap.Players {
		p := &Player{
			ID:            ps.ID,
			Name:          ps.Name,
			City:          ps.City,
			Variant:       ps.Variant,
			Money:         ps.Money,
			SpecialsBuilt: ps.SpecialsBuilt,
			Battles:       ps.Battles,
			FreeBuildAges: make(map[int]bool),
			game:          g,
			seat:          seat,
		}
		if catalog.City(ps.City) == nil {
			return nil, fmt.Errorf("restore: player %s has unknown city %q", ps.ID, ps.City)
		}
		for _, name := range ps.Buildings {
			building := catalog.Building(name)
			if building == nil {
				return nil, fmt.Errorf("restore: unknown building %q", name)
			}
			p.Buildings = append(p.Buildings, building)
		}
		for _, ref := range ps.Hand {
			option, err := resolveOption(catalog, ref)
			if err != nil {
				return nil, err
			}
			p.Hand = append(p.Hand, option)
		}
		for _, age := range ps.FreeBuildAges {
			p.FreeBuildAges[age] = true
		}
		if ps.Action != ActionNone {
			if ps.Picked == nil {
				return nil, fmt.Errorf("restore: player %s has a decision with no picked option", ps.ID)
			}
			// The picked option must be the hand entry itself so that
			// resolution removes the right card.
			var picked *rules.BuildOption
			for _, o := range p.Hand {
				if o.Building.Name == ps.Picked.Building && o.AgeIndex == ps.Picked.Age {
					picked = o
					break
				}
			}
			if picked == nil {
				return nil, fmt.Errorf("restore: picked option %q not in hand of %s", ps.Picked.Building, ps.ID)
			}
			p.Decision = Decision{
				Action:     ps.Action,
				Option:     picked,
				TradeLeft:  ps.TradeLeft,
				TradeRight: ps.TradeRight,
			}
		}
		g.Players = append(g.Players, p)
	}
	return g, nil
}

func resolveOption(catalog *rules.Catalog, ref OptionRef) (*rules.BuildOption, error) {
	building := catalog.Building(ref.Building)
	if building == nil {
		return nil, fmt.Errorf("restore: unknown building %q", ref.Building)
	}
	return &rules.BuildOption{Building: building, AgeIndex: ref.Age, MinPlayers: ref.MinPlayers}, nil
}
