// Package engine drives a single game: dealing, the simultaneous-turn
// barrier, two-phase action resolution, age transitions with battles, and
// final scoring. A Game is an in-memory aggregate owned by the engine;
// persistence happens only through the explicit Snapshot/RestoreGame
// boundary.
package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"polis/internal/rules"
)

var (
	ErrGameStarted      = errors.New("game already started")
	ErrGameNotStarted   = errors.New("game not started")
	ErrGameFinished     = errors.New("game already finished")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrNoCityAvailable  = errors.New("no city available")
	ErrNotEnoughOptions = errors.New("not enough build options in catalog")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrAlreadyDecided   = errors.New("decision already submitted this turn")
	ErrInvalidAction    = errors.New("invalid action")
	ErrOptionNotInHand  = errors.New("option not in hand")
	ErrFreeBuildUnused  = errors.New("free-build ability unavailable")
	ErrAlreadyBuilt     = errors.New("building already owned")
	ErrNoSpecialLeft    = errors.New("no city special left to build")
	ErrCannotPay        = errors.New("cost not payable with declared trade")

	// ErrCorrupted marks an internal-consistency fault during resolution.
	// A game reporting it must be treated as unrecoverable.
	ErrCorrupted = errors.New("game state corrupted")
)

// Game holds the entire state of one match. All exported methods are safe
// for concurrent use; resolution runs under the game's lock, so only one
// resolution is ever in flight per game.
type Game struct {
	mu sync.Mutex

	ID      string
	Catalog *rules.Catalog
	Config  Config

	Players []*Player

	AgeIndex int
	Turn     int
	Started  bool
	Finished bool

	// Discards is the multiset of spent build options.
	Discards []*rules.BuildOption
}

// NewGame creates an empty, unstarted game over the given catalog.
func NewGame(id string, catalog *rules.Catalog, config Config) *Game {
	return &Game{
		ID:      id,
		Catalog: catalog,
		Config:  config,
		Turn:    1,
	}
}

// Age returns the current age's rules.
func (g *Game) Age() *rules.Age {
	return g.Catalog.Age(g.AgeIndex)
}

// Join seats a new player at the end of the ring, assigning a random free
// city and a random variant. Joining is only possible before the start.
func (g *Game) Join(id, name string) (*Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Started {
		return nil, ErrGameStarted
	}
	var free []rules.City
	for _, city := range g.Catalog.Cities {
		taken := false
		for _, p := range g.Players {
			if p.City == city.Name {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, city)
		}
	}
	if len(free) == 0 {
		return nil, ErrNoCityAvailable
	}

	p := &Player{
		ID:            id,
		Name:          name,
		City:          free[rand.IntN(len(free))].Name,
		Variant:       g.Catalog.Variants[rand.IntN(len(g.Catalog.Variants))],
		Money:         g.Config.InitialMoney,
		FreeBuildAges: make(map[int]bool),
		game:          g,
		seat:          len(g.Players),
	}
	g.Players = append(g.Players, p)
	return p, nil
}

// Player returns the seated player with the given ID, nil if absent.
func (g *Game) Player(id string) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.player(id)
}

func (g *Game) player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Start puts the game in its initial state and deals the first hands.
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Started {
		return ErrGameStarted
	}
	if g.Finished {
		return ErrGameFinished
	}
	if len(g.Players) < g.Config.MinimumPlayers {
		return ErrNotEnoughPlayers
	}
	if g.AgeIndex != 0 || g.Turn != 1 || len(g.Discards) != 0 {
		return fmt.Errorf("%w: unstarted game has advanced state", ErrCorrupted)
	}
	// The seat count is fixed from here on, so every age's pool can be
	// checked now instead of failing mid-resolution at an age transition.
	required := len(g.Players) * g.Config.InitialOptions
	for age := 0; age < g.Catalog.AgeCount(); age++ {
		regular, personalities := g.Catalog.OptionsFor(age, len(g.Players))
		if len(regular)+len(personalities) < required {
			return fmt.Errorf("%w: need %d for age %q, have %d",
				ErrNotEnoughOptions, required, g.Catalog.Age(age).Name,
				len(regular)+len(personalities))
		}
	}
	if err := g.deal(); err != nil {
		return err
	}
	g.Started = true
	return nil
}

// deal assigns each seated player a fresh hand for the current age. The
// pool is drawn from eligible non-personality options plus a clipped count
// of personality options, reshuffled together. Hands must be empty.
func (g *Game) deal() error {
	n := len(g.Players)
	required := n * g.Config.InitialOptions

	regular, personalities := g.Catalog.OptionsFor(g.AgeIndex, n)
	rand.Shuffle(len(regular), func(i, j int) { regular[i], regular[j] = regular[j], regular[i] })
	rand.Shuffle(len(personalities), func(i, j int) {
		personalities[i], personalities[j] = personalities[j], personalities[i]
	})

	if len(regular)+len(personalities) < required {
		return fmt.Errorf("%w: need %d for age %q, have %d",
			ErrNotEnoughOptions, required, g.Age().Name, len(regular)+len(personalities))
	}

	// Personality count: clip the recommended n+2 into what is required
	// and what is available.
	requiredPersonalities := required - len(regular)
	actual := n + 2
	if actual < requiredPersonalities {
		actual = requiredPersonalities
	}
	if actual > len(personalities) {
		actual = len(personalities)
	}

	pool := make([]*rules.BuildOption, 0, required)
	pool = append(pool, regular[:required-actual]...)
	pool = append(pool, personalities[:actual]...)
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	for i, p := range g.Players {
		if len(p.Hand) != 0 {
			return fmt.Errorf("%w: dealing over a non-empty hand", ErrCorrupted)
		}
		hand := make([]*rules.BuildOption, g.Config.InitialOptions)
		copy(hand, pool[i*g.Config.InitialOptions:(i+1)*g.Config.InitialOptions])
		p.Hand = hand
	}
	return nil
}

// Play records a player's decision for the current turn. The decision is
// validated now but applied only when every seated player has decided;
// submitting never mutates money or buildings. When the last decision
// arrives the turn resolves before Play returns.
func (g *Game) Play(playerID string, action ActionKind, building string, tradeLeft, tradeRight int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.Started {
		return ErrGameNotStarted
	}
	if g.Finished {
		return ErrGameFinished
	}
	p := g.player(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	if p.Decision.Action != ActionNone {
		return ErrAlreadyDecided
	}
	option := p.handOption(building)
	if option == nil {
		return fmt.Errorf("%w: %q", ErrOptionNotInHand, building)
	}
	if err := g.validate(p, action, option, tradeLeft, tradeRight); err != nil {
		return err
	}

	p.Decision = Decision{
		Action:     action,
		Option:     option,
		TradeLeft:  tradeLeft,
		TradeRight: tradeRight,
	}

	// Turn barrier: resolve once every seat has a decision.
	for _, other := range g.Players {
		if other.Decision.Action == ActionNone {
			return nil
		}
	}
	return g.resolveTurn()
}

// resolveTurn applies every pending decision in two passes over the ring,
// rotates hands, and advances the turn or age. It runs to completion; any
// error it returns means the game state is corrupted.
func (g *Game) resolveTurn() error {
	for _, p := range g.Players {
		if err := g.preApply(p); err != nil {
			return err
		}
	}
	for _, p := range g.Players {
		if err := g.apply(p); err != nil {
			return err
		}
	}

	g.rotate()

	g.Turn++
	if g.Turn > g.Config.TurnCount {
		if err := g.endOfAge(); err != nil {
			return err
		}
	}

	// Re-arm the barrier.
	for _, p := range g.Players {
		p.Decision = Decision{}
	}
	return nil
}

// rotate passes every hand one seat in the current age's direction.
func (g *Game) rotate() {
	n := len(g.Players)
	hands := make([][]*rules.BuildOption, n)
	for i := range g.Players {
		if g.Age().Direction == rules.DirectionLeft {
			hands[i] = g.Players[(i+1)%n].Hand
		} else {
			hands[i] = g.Players[(i-1+n)%n].Hand
		}
	}
	for i, p := range g.Players {
		p.Hand = hands[i]
	}
}

// endOfAge discards remaining hands, fights the battles, and either
// advances to the next age (re-dealing) or finishes the game.
func (g *Game) endOfAge() error {
	for _, p := range g.Players {
		g.Discards = append(g.Discards, p.Hand...)
		p.Hand = nil
	}

	for _, p := range g.Players {
		for _, side := range []struct {
			neighbor  *Player
			direction rules.Direction
		}{
			{p.Left(), rules.DirectionLeft},
			{p.Right(), rules.DirectionRight},
		} {
			local, foreign := p.Military(), side.neighbor.Military()
			if local == foreign {
				continue
			}
			p.Battles = append(p.Battles, BattleResult{
				AgeIndex:  g.AgeIndex,
				Direction: side.direction,
				Victory:   local > foreign,
			})
		}
	}

	if g.AgeIndex+1 >= g.Catalog.AgeCount() {
		g.Finished = true
		return nil
	}
	g.AgeIndex++
	g.Turn = 1
	return g.deal()
}
