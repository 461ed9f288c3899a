package engine

import (
	"polis/internal/economy"
	"polis/internal/rules"
)

// PublicView is the game state visible to every spectator.
type PublicView struct {
	ID           string             `json:"id"`
	Age          string             `json:"age"`
	Direction    rules.Direction    `json:"direction"`
	Turn         int                `json:"turn"`
	Started      bool               `json:"started"`
	Finished     bool               `json:"finished"`
	DiscardCount int                `json:"discard_count"`
	Players      []PublicPlayerView `json:"players"`
	Scores       []ScoreEntry       `json:"scores,omitempty"`
}

// PublicPlayerView is one seat as spectators see it: decisions and hand
// contents stay hidden.
type PublicPlayerView struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Seat          int            `json:"seat"`
	City          string         `json:"city"`
	Variant       string         `json:"variant"`
	Money         int            `json:"money"`
	SpecialsBuilt int            `json:"specials_built"`
	Buildings     []string       `json:"buildings"`
	Military      int            `json:"military"`
	HandSize      int            `json:"hand_size"`
	Decided       bool           `json:"decided"`
	Battles       []BattleResult `json:"battles,omitempty"`
}

// PlayerView extends the public view with the owner's private state.
type PlayerView struct {
	PublicView
	Hand         []HandOption `json:"hand"`
	CanBuildFree bool         `json:"can_build_free"`
	NextSpecial  *SpecialView `json:"next_special,omitempty"`
	Decided      bool         `json:"decided"`
}

// HandOption is one held option with the ways its building can be paid.
type HandOption struct {
	Building string                  `json:"building"`
	Kind     rules.Kind              `json:"kind"`
	Cost     string                  `json:"cost"`
	Score    int                     `json:"score,omitempty"`
	Payments []economy.PaymentOption `json:"payments,omitempty"`
}

// SpecialView describes the next buildable city special.
type SpecialView struct {
	Order    int                     `json:"order"`
	Cost     string                  `json:"cost"`
	Payments []economy.PaymentOption `json:"payments,omitempty"`
}

// View returns the public view of the game.
func (g *Game) View() PublicView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.publicView()
}

func (g *Game) publicView() PublicView {
	view := PublicView{
		ID:           g.ID,
		Turn:         g.Turn,
		Started:      g.Started,
		Finished:     g.Finished,
		DiscardCount: len(g.Discards),
	}
	if age := g.Age(); age != nil {
		view.Age = age.Name
		view.Direction = age.Direction
	}
	for _, p := range g.Players {
		buildings := make([]string, len(p.Buildings))
		for i, b := range p.Buildings {
			buildings[i] = b.Name
		}
		view.Players = append(view.Players, PublicPlayerView{
			ID:            p.ID,
			Name:          p.Name,
			Seat:          p.seat,
			City:          p.City,
			Variant:       p.Variant,
			Money:         p.Money,
			SpecialsBuilt: p.SpecialsBuilt,
			Buildings:     buildings,
			Military:      p.Military(),
			HandSize:      len(p.Hand),
			Decided:       p.Decision.Action != ActionNone,
			Battles:       p.Battles,
		})
	}
	if g.Finished {
		for _, p := range g.Players {
			score := g.scoreFor(p)
			view.Scores = append(view.Scores, ScoreEntry{
				PlayerID:   p.ID,
				PlayerName: p.Name,
				City:       p.City,
				Variant:    p.Variant,
				Score:      score,
				Total:      score.Total(),
			})
		}
	}
	return view
}

// ViewFor returns the game state visible to one seated player.
func (g *Game) ViewFor(playerID string) (PlayerView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.player(playerID)
	if p == nil {
		return PlayerView{}, ErrPlayerNotFound
	}

	view := PlayerView{
		PublicView:   g.publicView(),
		CanBuildFree: g.canBuildFree(p),
		Decided:      p.Decision.Action != ActionNone,
	}
	for _, o := range p.Hand {
		view.Hand = append(view.Hand, HandOption{
			Building: o.Building.Name,
			Kind:     o.Building.Kind,
			Cost:     o.Building.Cost.String(),
			Score:    o.Building.Effect.Score,
			Payments: g.paymentOptions(p, o.Building.Cost, o.Building),
		})
	}
	if special := g.nextSpecial(p); special != nil {
		view.NextSpecial = &SpecialView{
			Order:    special.Order,
			Cost:     special.Cost.String(),
			Payments: g.paymentOptions(p, special.Cost, nil),
		}
	}
	return view, nil
}
