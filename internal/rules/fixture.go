package rules

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// fixtureCatalog is the JSON shape of a catalog file. Options reference
// buildings and ages by name and may carry a copy count.
type fixtureCatalog struct {
	Resources []Resource      `json:"resources"`
	Sciences  []string        `json:"sciences"`
	Variants  []string        `json:"variants"`
	Ages      []Age           `json:"ages"`
	Cities    []City          `json:"cities"`
	Buildings []*Building     `json:"buildings"`
	Options   []fixtureOption `json:"options"`
	Specials  []CitySpecial   `json:"specials"`
}

type fixtureOption struct {
	Building   string `json:"building"`
	Age        string `json:"age"`
	MinPlayers int    `json:"min_players"`
	Copies     int    `json:"copies,omitempty"`
}

// Load reads and validates a catalog fixture from r.
func Load(r io.Reader) (*Catalog, error) {
	var fix fixtureCatalog
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fix); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	catalog := &Catalog{
		Resources: fix.Resources,
		Sciences:  fix.Sciences,
		Variants:  fix.Variants,
		Ages:      fix.Ages,
		Cities:    fix.Cities,
		Buildings: fix.Buildings,
		Specials:  fix.Specials,
	}

	ageIndex := make(map[string]int, len(fix.Ages))
	for i, a := range fix.Ages {
		ageIndex[a.Name] = i
	}
	for _, fo := range fix.Options {
		building := catalog.Building(fo.Building)
		if building == nil {
			return nil, fmt.Errorf("catalog: option references unknown building %q", fo.Building)
		}
		age, ok := ageIndex[fo.Age]
		if !ok {
			return nil, fmt.Errorf("catalog: option for %q references unknown age %q", fo.Building, fo.Age)
		}
		copies := fo.Copies
		if copies == 0 {
			copies = 1
		}
		for i := 0; i < copies; i++ {
			catalog.Options = append(catalog.Options, &BuildOption{
				Building:   building,
				AgeIndex:   age,
				MinPlayers: fo.MinPlayers,
			})
		}
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadFile reads and validates a catalog fixture from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}
