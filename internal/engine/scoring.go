package engine

import (
	"strconv"
	"strings"

	"polis/internal/rules"
)

// ScoreEntry holds the final score breakdown for one player.
type ScoreEntry struct {
	PlayerID   string      `json:"player_id"`
	PlayerName string      `json:"player_name"`
	City       string      `json:"city"`
	Variant    string      `json:"variant"`
	Score      rules.Score `json:"score"`
	Total      int         `json:"total"`
}

// Scores computes the score vector for every seated player.
func (g *Game) Scores() []ScoreEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	entries := make([]ScoreEntry, len(g.Players))
	for i, p := range g.Players {
		score := g.scoreFor(p)
		entries[i] = ScoreEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			City:       p.City,
			Variant:    p.Variant,
			Score:      score,
			Total:      score.Total(),
		}
	}
	return entries
}

func (g *Game) scoreFor(p *Player) rules.Score {
	left, right := p.Left(), p.Right()

	military := 0
	for _, b := range p.Battles {
		military += b.Value(g.Catalog.Age(b.AgeIndex))
	}

	special := 0
	for _, s := range g.Catalog.SpecialsFor(p.City, p.Variant) {
		if s.Order < p.SpecialsBuilt {
			special += s.Effect.Points(p, left, right)
		}
	}

	score := rules.Score{
		Treasury: p.Money / 3,
		Military: military,
		Special:  special,
		Science:  g.scienceScore(p),
	}
	for _, b := range p.Buildings {
		score = score.Add(b.ScoreVector(p, left, right))
	}
	return score
}

// scienceScore maximizes min(counts)×group-bonus + Σ count² over every
// assignment of one science type per science-producing effect. The search
// iterates the set of reachable count-vectors, deduplicating coincident
// vectors rather than pruning; effect counts are single digits, so the
// set stays small.
func (g *Game) scienceScore(p *Player) int {
	sciences := g.Catalog.Sciences
	index := make(map[string]int, len(sciences))
	for i, name := range sciences {
		index[name] = i
	}

	var menus [][]int
	for _, e := range p.activeEffects() {
		if len(e.Sciences) == 0 {
			continue
		}
		menu := make([]int, 0, len(e.Sciences))
		for _, name := range e.Sciences {
			menu = append(menu, index[name])
		}
		menus = append(menus, menu)
	}

	reachable := map[string][]int{vectorKey(make([]int, len(sciences))): make([]int, len(sciences))}
	for _, menu := range menus {
		next := make(map[string][]int, len(reachable)*len(menu))
		for _, counts := range reachable {
			for _, science := range menu {
				bumped := make([]int, len(counts))
				copy(bumped, counts)
				bumped[science]++
				next[vectorKey(bumped)] = bumped
			}
		}
		reachable = next
	}

	best := 0
	for _, counts := range reachable {
		value := 0
		groups := 0
		for i, count := range counts {
			value += count * count
			if i == 0 || count < groups {
				groups = count
			}
		}
		value += groups * g.Config.ScienceScorePerGroup
		if value > best {
			best = value
		}
	}
	return best
}

func vectorKey(counts []int) string {
	var b strings.Builder
	for i, count := range counts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(count))
	}
	return b.String()
}
