package engine

import (
	"fmt"

	"polis/internal/economy"
	"polis/internal/rules"
)

// validate checks a submitted decision against the current state. Every
// rejection happens here, before any mutation; resolution assumes the
// recorded decisions are realizable.
func (g *Game) validate(p *Player, action ActionKind, option *rules.BuildOption, tradeLeft, tradeRight int) error {
	switch action {
	case ActionSell:
		return nil
	case ActionBuild:
		options := g.paymentOptions(p, option.Building.Cost, option.Building)
		if _, ok := economy.CanPay(options, tradeLeft, tradeRight); !ok {
			return fmt.Errorf("%w: %s for %s", ErrCannotPay, option.Building.Cost, option.Building.Name)
		}
		return nil
	case ActionFree:
		if !g.canBuildFree(p) {
			return ErrFreeBuildUnused
		}
		// Buildings form a set; the ability waives the cost, not the
		// one-copy rule.
		if p.HasBuilding(option.Building.Name) {
			return fmt.Errorf("%w: %s", ErrAlreadyBuilt, option.Building.Name)
		}
		return nil
	case ActionSpecial:
		special := g.nextSpecial(p)
		if special == nil {
			return ErrNoSpecialLeft
		}
		options := g.paymentOptions(p, special.Cost, nil)
		if _, ok := economy.CanPay(options, tradeLeft, tradeRight); !ok {
			return fmt.Errorf("%w: %s for special %d", ErrCannotPay, special.Cost, special.Order)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
}

// preApply is resolution pass one: pay the cost and raise the building.
// The building joins the owned set before money moves, so it can never
// count toward its own cost or production. Neighbor trade settles in pass
// two.
func (g *Game) preApply(p *Player) error {
	d := p.Decision
	switch d.Action {
	case ActionBuild:
		payment, ok := economy.CanPay(
			g.paymentOptions(p, d.Option.Building.Cost, d.Option.Building),
			d.TradeLeft, d.TradeRight,
		)
		if !ok {
			return fmt.Errorf("%w: accepted payment for %s no longer realizable",
				ErrCorrupted, d.Option.Building.Name)
		}
		p.Buildings = append(p.Buildings, d.Option.Building)
		p.Money -= payment.Money
	case ActionFree:
		p.Buildings = append(p.Buildings, d.Option.Building)
	}
	return nil
}

// apply is resolution pass two: settle neighbor trade, credit produced
// money, consume abilities, and retire the picked option.
func (g *Game) apply(p *Player) error {
	d := p.Decision
	left, right := p.Left(), p.Right()

	switch d.Action {
	case ActionSell:
		g.Discards = append(g.Discards, d.Option)
		p.Money += g.Config.SellValue
	case ActionBuild:
		g.settleTrade(p, d)
		p.Money += d.Option.Building.Effect.Money(p, left, right)
	case ActionFree:
		p.FreeBuildAges[g.AgeIndex] = true
		p.Money += d.Option.Building.Effect.Money(p, left, right)
	case ActionSpecial:
		special := g.nextSpecial(p)
		if special == nil {
			return fmt.Errorf("%w: special track exhausted during apply", ErrCorrupted)
		}
		g.settleTrade(p, d)
		p.Money += special.Effect.Money(p, left, right)
		p.SpecialsBuilt = special.Order + 1
	default:
		return fmt.Errorf("%w: unmatched action %q during apply", ErrCorrupted, d.Action)
	}

	if !p.removeFromHand(d.Option) {
		return fmt.Errorf("%w: picked option missing from hand", ErrCorrupted)
	}
	return nil
}

// settleTrade moves the declared trade money from the payer to each
// neighbor.
func (g *Game) settleTrade(p *Player, d Decision) {
	if d.TradeLeft > 0 {
		p.Left().Money += d.TradeLeft
		p.Money -= d.TradeLeft
	}
	if d.TradeRight > 0 {
		p.Right().Money += d.TradeRight
		p.Money -= d.TradeRight
	}
}

// nextSpecial returns the player's next unbuilt city special, nil when the
// track is complete.
func (g *Game) nextSpecial(p *Player) *rules.CitySpecial {
	return g.Catalog.NextSpecial(p.City, p.Variant, p.SpecialsBuilt)
}

// canBuildFree reports whether the player holds an unspent free-build
// ability for the current age.
func (g *Game) canBuildFree(p *Player) bool {
	if p.FreeBuildAges[g.AgeIndex] {
		return false
	}
	for _, e := range p.activeEffects() {
		if e.FreeBuilding {
			return true
		}
	}
	return false
}

// paymentOptions enumerates the ways p can pay the given cost. When the
// cost belongs to a building, owning it forbids a second copy and owning
// its free-with prerequisite makes it free.
func (g *Game) paymentOptions(p *Player, cost rules.Cost, building *rules.Building) []economy.PaymentOption {
	if building != nil {
		if p.HasBuilding(building.Name) {
			return nil
		}
		if building.FreeWith != "" && p.HasBuilding(building.FreeWith) {
			return []economy.PaymentOption{{}}
		}
	}
	return economy.Payments(
		cost,
		p.Money,
		g.localProduction(p),
		g.neighborQuote(p, p.Left(), rules.DirectionLeft),
		g.neighborQuote(p, p.Right(), rules.DirectionRight),
	)
}

// localProduction lists p's own free production sources: the city resource
// plus every producing active effect.
func (g *Game) localProduction(p *Player) []economy.Source {
	sources := []economy.Source{g.cityResourceSource(p)}
	for _, e := range p.activeEffects() {
		if e.Production == nil {
			continue
		}
		if lines := e.Production.Lines(); len(lines) > 0 {
			sources = append(sources, economy.Source(lines))
		}
	}
	return sources
}

// neighborQuote describes what a neighbor can sell to p and at which
// prices, folding p's own trade-discount effects for that direction over
// the default price.
func (g *Game) neighborQuote(p, neighbor *Player, direction rules.Direction) economy.Neighbor {
	prices := make(map[string]int)
	for _, e := range p.activeEffects() {
		if e.Trade == nil {
			continue
		}
		if (direction == rules.DirectionLeft && !e.LeftTrade) ||
			(direction == rules.DirectionRight && !e.RightTrade) {
			continue
		}
		for _, line := range e.Trade.Lines() {
			// Minimum-fold seeded with the default price: a discount only
			// counts when it beats both the default and earlier discounts.
			if e.Trade.Money >= g.Config.DefaultTradeCost {
				continue
			}
			if current, ok := prices[line.Resource]; !ok || e.Trade.Money < current {
				prices[line.Resource] = e.Trade.Money
			}
		}
	}
	return economy.Neighbor{
		Offers:       g.tradeableResources(neighbor),
		Prices:       prices,
		DefaultPrice: g.Config.DefaultTradeCost,
	}
}

// tradeableResources lists what a player offers for sale: the city
// resource plus production of tradeable-kind buildings. Not every resource
// a player produces is for sale.
func (g *Game) tradeableResources(p *Player) []economy.Source {
	sources := []economy.Source{g.cityResourceSource(p)}
	for _, b := range p.Buildings {
		if !b.Kind.Tradeable() || b.Effect.Production == nil {
			continue
		}
		if lines := b.Effect.Production.Lines(); len(lines) > 0 {
			sources = append(sources, economy.Source(lines))
		}
	}
	return sources
}

func (g *Game) cityResourceSource(p *Player) economy.Source {
	city := g.Catalog.City(p.City)
	return economy.Source{{Amount: 1, Resource: city.Resource}}
}
