// Package rules holds the immutable game-design catalog: buildings, build
// options, effects, costs, cities and their specials, ages, resources and
// sciences. The catalog is loaded once (from the built-in base set or a
// JSON fixture) and only queried afterwards, never mutated during play.
package rules

import (
	"fmt"
	"sort"
)

// Direction is the sense in which hands rotate during an age.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Resource is a collectable good. Basic resources are raw materials,
// non-basic ones refined goods.
type Resource struct {
	Name  string `json:"name"`
	Basic bool   `json:"basic,omitempty"`
}

// Age is one phase of the game. Ages are played in slice order.
type Age struct {
	Name         string    `json:"name"`
	Direction    Direction `json:"direction"`
	VictoryScore int       `json:"victory_score"`
	DefeatScore  int       `json:"defeat_score"`
}

// City is a player's home city; it produces its resource from the start.
type City struct {
	Name     string `json:"name"`
	Resource string `json:"resource"`
}

// CitySpecial is one stage of a city+variant's special track. Specials are
// built strictly in Order (0-based): the next buildable one is the stage at
// the player's specials-built index.
type CitySpecial struct {
	City    string `json:"city"`
	Variant string `json:"variant"`
	Order   int    `json:"order"`
	Cost    Cost   `json:"cost"`
	Effect  Effect `json:"effect"`
}

// Catalog is the complete rules data set.
type Catalog struct {
	Resources []Resource
	Sciences  []string
	Variants  []string
	Ages      []Age
	Cities    []City
	Buildings []*Building
	Options   []*BuildOption
	Specials  []CitySpecial
}

// Building looks a building up by name, nil if absent.
func (c *Catalog) Building(name string) *Building {
	for _, b := range c.Buildings {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// City looks a city up by name, nil if absent.
func (c *Catalog) City(name string) *City {
	for i := range c.Cities {
		if c.Cities[i].Name == name {
			return &c.Cities[i]
		}
	}
	return nil
}

// Resource looks a resource up by name, nil if absent.
func (c *Catalog) Resource(name string) *Resource {
	for i := range c.Resources {
		if c.Resources[i].Name == name {
			return &c.Resources[i]
		}
	}
	return nil
}

// AgeCount returns the number of ages.
func (c *Catalog) AgeCount() int { return len(c.Ages) }

// Age returns the age at the given index, nil when out of range.
func (c *Catalog) Age(index int) *Age {
	if index < 0 || index >= len(c.Ages) {
		return nil
	}
	return &c.Ages[index]
}

// OptionsFor returns the build options eligible for the given age and
// seated player count, split into non-personality options and personality
// options. The returned slices are fresh copies.
func (c *Catalog) OptionsFor(age, players int) (regular, personalities []*BuildOption) {
	for _, o := range c.Options {
		if o.AgeIndex != age || o.MinPlayers > players {
			continue
		}
		if o.Building.Kind == KindPersonality {
			personalities = append(personalities, o)
		} else {
			regular = append(regular, o)
		}
	}
	return regular, personalities
}

// SpecialsFor returns the ordered special track for a city+variant.
func (c *Catalog) SpecialsFor(city, variant string) []CitySpecial {
	var track []CitySpecial
	for _, s := range c.Specials {
		if s.City == city && s.Variant == variant {
			track = append(track, s)
		}
	}
	sort.Slice(track, func(i, j int) bool { return track[i].Order < track[j].Order })
	return track
}

// NextSpecial returns the first special of the track at or above the given
// built index, nil when the track is exhausted.
func (c *Catalog) NextSpecial(city, variant string, built int) *CitySpecial {
	var next *CitySpecial
	for i := range c.Specials {
		s := &c.Specials[i]
		if s.City != city || s.Variant != variant || s.Order < built {
			continue
		}
		if next == nil || s.Order < next.Order {
			next = s
		}
	}
	return next
}

// Validate checks the catalog for internal consistency: dangling names,
// invalid kinds, unordered special tracks and empty required listings.
func (c *Catalog) Validate() error {
	if len(c.Ages) == 0 {
		return fmt.Errorf("catalog: no ages defined")
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("catalog: no variants defined")
	}
	for _, a := range c.Ages {
		if a.Direction != DirectionLeft && a.Direction != DirectionRight {
			return fmt.Errorf("catalog: age %q has invalid direction %q", a.Name, a.Direction)
		}
	}
	for _, city := range c.Cities {
		if c.Resource(city.Resource) == nil {
			return fmt.Errorf("catalog: city %q produces unknown resource %q", city.Name, city.Resource)
		}
	}
	for _, b := range c.Buildings {
		if !b.Kind.Valid() {
			return fmt.Errorf("catalog: building %q has invalid kind %q", b.Name, b.Kind)
		}
		if b.FreeWith != "" && c.Building(b.FreeWith) == nil {
			return fmt.Errorf("catalog: building %q is free with unknown building %q", b.Name, b.FreeWith)
		}
		if err := c.validateEffect(b.Name, &b.Effect); err != nil {
			return err
		}
		for resource := range b.Cost.Resources {
			if c.Resource(resource) == nil {
				return fmt.Errorf("catalog: building %q costs unknown resource %q", b.Name, resource)
			}
		}
	}
	for _, o := range c.Options {
		if o.Building == nil {
			return fmt.Errorf("catalog: build option with no building")
		}
		if c.Age(o.AgeIndex) == nil {
			return fmt.Errorf("catalog: option for %q references age %d", o.Building.Name, o.AgeIndex)
		}
		if o.MinPlayers < 1 {
			return fmt.Errorf("catalog: option for %q needs a positive player gate", o.Building.Name)
		}
	}
	for city, variants := range c.specialTracks() {
		for variant, orders := range variants {
			sort.Ints(orders)
			for i, order := range orders {
				if order != i {
					return fmt.Errorf("catalog: specials for %s/%s are not a 0-based sequence", city, variant)
				}
			}
		}
	}
	for i := range c.Specials {
		s := &c.Specials[i]
		if c.City(s.City) == nil {
			return fmt.Errorf("catalog: special for unknown city %q", s.City)
		}
		if err := c.validateEffect(fmt.Sprintf("%s/%s special %d", s.City, s.Variant, s.Order), &s.Effect); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) validateEffect(owner string, e *Effect) error {
	for _, science := range e.Sciences {
		if !c.hasScience(science) {
			return fmt.Errorf("catalog: %s offers unknown science %q", owner, science)
		}
	}
	if e.Trade != nil && !e.LeftTrade && !e.RightTrade {
		return fmt.Errorf("catalog: %s has trade terms with no direction", owner)
	}
	if e.Trade == nil && (e.LeftTrade || e.RightTrade) {
		return fmt.Errorf("catalog: %s has a trade direction but no terms", owner)
	}
	if e.KindPaid == "" && (e.MoneyPerLocalBuilding > 0 || e.MoneyPerNeighborBuilding > 0) {
		return fmt.Errorf("catalog: %s pays per building of no kind", owner)
	}
	if e.KindPaid != "" && !e.KindPaid.Valid() {
		return fmt.Errorf("catalog: %s pays per invalid kind %q", owner, e.KindPaid)
	}
	for _, kind := range e.KindsScored {
		if !kind.Valid() {
			return fmt.Errorf("catalog: %s scores per invalid kind %q", owner, kind)
		}
	}
	return nil
}

func (c *Catalog) hasScience(name string) bool {
	for _, s := range c.Sciences {
		if s == name {
			return true
		}
	}
	return false
}

func (c *Catalog) specialTracks() map[string]map[string][]int {
	tracks := make(map[string]map[string][]int)
	for _, s := range c.Specials {
		if tracks[s.City] == nil {
			tracks[s.City] = make(map[string][]int)
		}
		tracks[s.City][s.Variant] = append(tracks[s.City][s.Variant], s.Order)
	}
	return tracks
}
