package rules

// BaseCatalog returns the built-in rules data set: three ages, four cities
// with two variants each, and enough build options to seat up to four
// players. It is also the reference shape for JSON fixtures.
func BaseCatalog() *Catalog {
	c := &Catalog{
		Resources: []Resource{
			{Name: "Wood", Basic: true},
			{Name: "Stone", Basic: true},
			{Name: "Clay", Basic: true},
			{Name: "Ore", Basic: true},
			{Name: "Glass"},
			{Name: "Cloth"},
			{Name: "Papyrus"},
		},
		Sciences: []string{"Writing", "Geometry", "Engineering"},
		Variants: []string{"day", "night"},
		Ages: []Age{
			{Name: "Archaic Age", Direction: DirectionLeft, VictoryScore: 1, DefeatScore: -1},
			{Name: "Classical Age", Direction: DirectionRight, VictoryScore: 3, DefeatScore: -1},
			{Name: "Imperial Age", Direction: DirectionLeft, VictoryScore: 5, DefeatScore: -1},
		},
		Cities: []City{
			{Name: "Athenai", Resource: "Glass"},
			{Name: "Sparte", Resource: "Ore"},
			{Name: "Korinthos", Resource: "Clay"},
			{Name: "Thebai", Resource: "Stone"},
		},
	}

	building := func(b *Building) *Building {
		c.Buildings = append(c.Buildings, b)
		return b
	}
	opt := func(b *Building, age, copies, minPlayers int) {
		for i := 0; i < copies; i++ {
			c.Options = append(c.Options, &BuildOption{Building: b, AgeIndex: age, MinPlayers: minPlayers})
		}
	}
	res := func(lines ...CostLine) map[string]int {
		m := make(map[string]int, len(lines))
		for _, l := range lines {
			m[l.Resource] = l.Amount
		}
		return m
	}
	r := func(amount int, resource string) CostLine { return CostLine{Amount: amount, Resource: resource} }
	produce := func(lines ...CostLine) *Cost { return &Cost{Resources: res(lines...)} }

	// Archaic Age

	lumberCamp := building(&Building{Name: "Lumber Camp", Kind: KindBasic,
		Effect: Effect{Production: produce(r(1, "Wood"))}})
	clayPit := building(&Building{Name: "Clay Pit", Kind: KindBasic,
		Effect: Effect{Production: produce(r(1, "Clay"))}})
	stoneQuarry := building(&Building{Name: "Stone Quarry", Kind: KindBasic,
		Effect: Effect{Production: produce(r(1, "Stone"))}})
	oreVein := building(&Building{Name: "Ore Vein", Kind: KindBasic,
		Effect: Effect{Production: produce(r(1, "Ore"))}})
	forestGrove := building(&Building{Name: "Forest Grove", Kind: KindBasic,
		Cost:   Cost{Money: 1},
		Effect: Effect{Production: produce(r(1, "Wood"), r(1, "Clay"))}})
	rockCut := building(&Building{Name: "Rock Cut", Kind: KindBasic,
		Cost:   Cost{Money: 1},
		Effect: Effect{Production: produce(r(1, "Stone"), r(1, "Ore"))}})

	glassworks := building(&Building{Name: "Glassworks", Kind: KindComplex,
		Effect: Effect{Production: produce(r(1, "Glass"))}})
	loom := building(&Building{Name: "Loom", Kind: KindComplex,
		Effect: Effect{Production: produce(r(1, "Cloth"))}})
	press := building(&Building{Name: "Press", Kind: KindComplex,
		Effect: Effect{Production: produce(r(1, "Papyrus"))}})

	altar := building(&Building{Name: "Altar", Kind: KindCivilian, Effect: Effect{Score: 2}})
	baths := building(&Building{Name: "Baths", Kind: KindCivilian,
		Cost: Cost{Resources: res(r(1, "Stone"))}, Effect: Effect{Score: 3}})
	theater := building(&Building{Name: "Theater", Kind: KindCivilian, Effect: Effect{Score: 2}})

	tavern := building(&Building{Name: "Tavern", Kind: KindEconomic,
		Effect: Effect{Production: &Cost{Money: 5}}})
	eastMarket := building(&Building{Name: "East Market", Kind: KindEconomic,
		Effect: Effect{
			Trade:      &Cost{Money: 1, Resources: res(r(1, "Wood"), r(1, "Stone"), r(1, "Clay"), r(1, "Ore"))},
			RightTrade: true,
		}})
	westMarket := building(&Building{Name: "West Market", Kind: KindEconomic,
		Effect: Effect{
			Trade:     &Cost{Money: 1, Resources: res(r(1, "Wood"), r(1, "Stone"), r(1, "Clay"), r(1, "Ore"))},
			LeftTrade: true,
		}})
	bazaar := building(&Building{Name: "Bazaar", Kind: KindEconomic,
		Effect: Effect{
			Trade:      &Cost{Money: 1, Resources: res(r(1, "Glass"), r(1, "Cloth"), r(1, "Papyrus"))},
			LeftTrade:  true,
			RightTrade: true,
		}})

	palisade := building(&Building{Name: "Palisade", Kind: KindMilitary,
		Cost: Cost{Resources: res(r(1, "Wood"))}, Effect: Effect{Military: 1}})
	watchtower := building(&Building{Name: "Watchtower", Kind: KindMilitary,
		Cost: Cost{Resources: res(r(1, "Clay"))}, Effect: Effect{Military: 1}})

	apothecary := building(&Building{Name: "Apothecary", Kind: KindScientific,
		Cost: Cost{Resources: res(r(1, "Cloth"))}, Effect: Effect{Sciences: []string{"Engineering"}}})
	scriptorium := building(&Building{Name: "Scriptorium", Kind: KindScientific,
		Cost: Cost{Resources: res(r(1, "Papyrus"))}, Effect: Effect{Sciences: []string{"Writing"}}})
	workshop := building(&Building{Name: "Workshop", Kind: KindScientific,
		Cost: Cost{Resources: res(r(1, "Glass"))}, Effect: Effect{Sciences: []string{"Geometry"}}})

	chronicler := building(&Building{Name: "The Chronicler", Kind: KindPersonality,
		Cost: Cost{Money: 2}, Effect: Effect{Score: 3}})
	taxman := building(&Building{Name: "The Taxman", Kind: KindPersonality,
		Cost:   Cost{Money: 1},
		Effect: Effect{KindPaid: KindBasic, MoneyPerLocalBuilding: 1}})
	herald := building(&Building{Name: "The Herald", Kind: KindPersonality,
		Effect: Effect{Score: 2}})
	smuggler := building(&Building{Name: "The Smuggler", Kind: KindPersonality,
		Cost: Cost{Money: 1},
		Effect: Effect{
			Trade:      &Cost{Money: 1, Resources: res(r(1, "Wood"), r(1, "Stone"), r(1, "Clay"), r(1, "Ore"))},
			LeftTrade:  true,
			RightTrade: true,
		}})
	quartermaster := building(&Building{Name: "The Quartermaster", Kind: KindPersonality,
		Cost:   Cost{Money: 2},
		Effect: Effect{Production: produce(r(1, "Wood"), r(1, "Stone"), r(1, "Clay"), r(1, "Ore"))}})
	mercenary := building(&Building{Name: "The Mercenary", Kind: KindPersonality,
		Cost: Cost{Money: 2}, Effect: Effect{Military: 1}})

	opt(lumberCamp, 0, 2, 3)
	opt(clayPit, 0, 2, 3)
	opt(stoneQuarry, 0, 2, 3)
	opt(oreVein, 0, 2, 3)
	opt(forestGrove, 0, 1, 3)
	opt(rockCut, 0, 1, 3)
	opt(glassworks, 0, 1, 3)
	opt(glassworks, 0, 1, 4)
	opt(loom, 0, 1, 3)
	opt(loom, 0, 1, 4)
	opt(press, 0, 1, 3)
	opt(press, 0, 1, 4)
	opt(altar, 0, 1, 3)
	opt(altar, 0, 1, 4)
	opt(baths, 0, 1, 3)
	opt(theater, 0, 1, 3)
	opt(theater, 0, 1, 4)
	opt(tavern, 0, 2, 4)
	opt(eastMarket, 0, 1, 3)
	opt(westMarket, 0, 1, 3)
	opt(bazaar, 0, 1, 4)
	opt(palisade, 0, 1, 3)
	opt(palisade, 0, 1, 4)
	opt(watchtower, 0, 1, 3)
	opt(apothecary, 0, 1, 3)
	opt(apothecary, 0, 1, 4)
	opt(scriptorium, 0, 1, 3)
	opt(workshop, 0, 1, 3)
	opt(workshop, 0, 1, 4)
	opt(chronicler, 0, 1, 3)
	opt(taxman, 0, 1, 3)
	opt(herald, 0, 1, 3)
	opt(smuggler, 0, 1, 3)
	opt(quartermaster, 0, 1, 4)
	opt(mercenary, 0, 1, 4)

	// Classical Age

	sawmill := building(&Building{Name: "Sawmill", Kind: KindBasic,
		Cost: Cost{Money: 1}, Effect: Effect{Production: produce(r(2, "Wood"))}})
	brickworks := building(&Building{Name: "Brickworks", Kind: KindBasic,
		Cost: Cost{Money: 1}, Effect: Effect{Production: produce(r(2, "Clay"))}})
	quarry := building(&Building{Name: "Quarry", Kind: KindBasic,
		Cost: Cost{Money: 1}, Effect: Effect{Production: produce(r(2, "Stone"))}})
	foundry := building(&Building{Name: "Foundry", Kind: KindBasic,
		Cost: Cost{Money: 1}, Effect: Effect{Production: produce(r(2, "Ore"))}})

	caravanserai := building(&Building{Name: "Caravanserai", Kind: KindEconomic,
		Cost:     Cost{Resources: res(r(2, "Wood"))},
		FreeWith: "West Market",
		Effect:   Effect{Production: produce(r(1, "Wood"), r(1, "Stone"), r(1, "Clay"), r(1, "Ore"))}})
	forum := building(&Building{Name: "Forum", Kind: KindEconomic,
		Cost:     Cost{Resources: res(r(2, "Clay"))},
		FreeWith: "East Market",
		Effect:   Effect{Production: produce(r(1, "Glass"), r(1, "Cloth"), r(1, "Papyrus"))}})
	vineyard := building(&Building{Name: "Vineyard", Kind: KindEconomic,
		Effect: Effect{KindPaid: KindBasic, MoneyPerLocalBuilding: 1, MoneyPerNeighborBuilding: 1}})

	temple := building(&Building{Name: "Temple", Kind: KindCivilian,
		Cost:     Cost{Resources: res(r(1, "Wood"), r(1, "Clay"))},
		FreeWith: "Altar",
		Effect:   Effect{Score: 3}})
	courthouse := building(&Building{Name: "Courthouse", Kind: KindCivilian,
		Cost:   Cost{Resources: res(r(2, "Clay"), r(1, "Cloth"))},
		Effect: Effect{Score: 4}})
	statue := building(&Building{Name: "Statue", Kind: KindCivilian,
		Cost:     Cost{Resources: res(r(2, "Ore"), r(1, "Wood"))},
		FreeWith: "Theater",
		Effect:   Effect{Score: 4}})
	aqueduct := building(&Building{Name: "Aqueduct", Kind: KindCivilian,
		Cost:     Cost{Resources: res(r(3, "Stone"))},
		FreeWith: "Baths",
		Effect:   Effect{Score: 5}})

	walls := building(&Building{Name: "Walls", Kind: KindMilitary,
		Cost: Cost{Resources: res(r(3, "Stone"))}, Effect: Effect{Military: 2}})
	stables := building(&Building{Name: "Stables", Kind: KindMilitary,
		Cost:     Cost{Resources: res(r(1, "Ore"), r(1, "Clay"))},
		FreeWith: "Palisade",
		Effect:   Effect{Military: 2}})
	archeryRange := building(&Building{Name: "Archery Range", Kind: KindMilitary,
		Cost:     Cost{Resources: res(r(2, "Wood"), r(1, "Ore"))},
		FreeWith: "Watchtower",
		Effect:   Effect{Military: 2}})

	library := building(&Building{Name: "Library", Kind: KindScientific,
		Cost:     Cost{Resources: res(r(2, "Stone"), r(1, "Cloth"))},
		FreeWith: "Scriptorium",
		Effect:   Effect{Sciences: []string{"Writing"}}})
	school := building(&Building{Name: "School", Kind: KindScientific,
		Cost:   Cost{Resources: res(r(1, "Wood"), r(1, "Papyrus"))},
		Effect: Effect{Sciences: []string{"Writing", "Geometry"}}})
	dispensary := building(&Building{Name: "Dispensary", Kind: KindScientific,
		Cost:     Cost{Resources: res(r(2, "Ore"), r(1, "Glass"))},
		FreeWith: "Apothecary",
		Effect:   Effect{Sciences: []string{"Engineering"}}})
	laboratory := building(&Building{Name: "Laboratory", Kind: KindScientific,
		Cost:     Cost{Resources: res(r(2, "Clay"), r(1, "Papyrus"))},
		FreeWith: "Workshop",
		Effect:   Effect{Sciences: []string{"Geometry"}}})

	magistrate := building(&Building{Name: "The Magistrate", Kind: KindPersonality,
		Cost:   Cost{Money: 2},
		Effect: Effect{KindsScored: []Kind{KindCivilian}, ScorePerLocalBuilding: 1}})
	merchantPrince := building(&Building{Name: "The Merchant Prince", Kind: KindPersonality,
		Cost:   Cost{Money: 2},
		Effect: Effect{KindPaid: KindEconomic, MoneyPerNeighborBuilding: 1}})
	engineer := building(&Building{Name: "The Engineer", Kind: KindPersonality,
		Cost:   Cost{Money: 3},
		Effect: Effect{Sciences: []string{"Writing", "Geometry", "Engineering"}}})
	diplomat := building(&Building{Name: "The Diplomat", Kind: KindPersonality,
		Cost: Cost{Money: 2}, Effect: Effect{Score: 4}})
	warlord := building(&Building{Name: "The Warlord", Kind: KindPersonality,
		Cost: Cost{Money: 3}, Effect: Effect{Military: 2}})
	masterBuilder := building(&Building{Name: "The Master Builder", Kind: KindPersonality,
		Cost:   Cost{Money: 2},
		Effect: Effect{MoneyPerLocalSpecial: 2}})

	opt(sawmill, 1, 2, 3)
	opt(brickworks, 1, 2, 3)
	opt(quarry, 1, 2, 3)
	opt(foundry, 1, 2, 3)
	opt(caravanserai, 1, 1, 3)
	opt(caravanserai, 1, 1, 4)
	opt(forum, 1, 1, 3)
	opt(forum, 1, 1, 4)
	opt(vineyard, 1, 1, 3)
	opt(temple, 1, 1, 3)
	opt(temple, 1, 1, 4)
	opt(courthouse, 1, 1, 3)
	opt(statue, 1, 1, 3)
	opt(aqueduct, 1, 1, 3)
	opt(walls, 1, 1, 3)
	opt(stables, 1, 1, 3)
	opt(stables, 1, 1, 4)
	opt(archeryRange, 1, 1, 3)
	opt(archeryRange, 1, 1, 4)
	opt(library, 1, 1, 3)
	opt(school, 1, 1, 3)
	opt(school, 1, 1, 4)
	opt(dispensary, 1, 1, 3)
	opt(dispensary, 1, 1, 4)
	opt(laboratory, 1, 1, 3)
	opt(magistrate, 1, 1, 3)
	opt(merchantPrince, 1, 1, 3)
	opt(engineer, 1, 1, 3)
	opt(diplomat, 1, 1, 3)
	opt(warlord, 1, 1, 4)
	opt(masterBuilder, 1, 1, 4)

	// Imperial Age

	pantheon := building(&Building{Name: "Pantheon", Kind: KindCivilian,
		Cost:     Cost{Resources: res(r(2, "Clay"), r(1, "Ore"), r(1, "Glass"), r(1, "Papyrus"))},
		FreeWith: "Temple",
		Effect:   Effect{Score: 7}})
	gardens := building(&Building{Name: "Gardens", Kind: KindCivilian,
		Cost:     Cost{Resources: res(r(2, "Clay"), r(1, "Wood"))},
		FreeWith: "Statue",
		Effect:   Effect{Score: 5}})
	townHall := building(&Building{Name: "Town Hall", Kind: KindCivilian,
		Cost:   Cost{Resources: res(r(2, "Stone"), r(1, "Ore"), r(1, "Glass"))},
		Effect: Effect{Score: 6}})
	palace := building(&Building{Name: "Palace", Kind: KindCivilian,
		Cost: Cost{Resources: res(r(1, "Wood"), r(1, "Stone"), r(1, "Clay"), r(1, "Ore"),
			r(1, "Glass"), r(1, "Cloth"), r(1, "Papyrus"))},
		Effect: Effect{Score: 8}})
	senate := building(&Building{Name: "Senate", Kind: KindCivilian,
		Cost:   Cost{Resources: res(r(2, "Wood"), r(1, "Stone"), r(1, "Ore"))},
		Effect: Effect{Score: 6}})

	fortifications := building(&Building{Name: "Fortifications", Kind: KindMilitary,
		Cost:     Cost{Resources: res(r(3, "Stone"), r(1, "Ore"))},
		FreeWith: "Walls",
		Effect:   Effect{Military: 3}})
	siegeWorks := building(&Building{Name: "Siege Works", Kind: KindMilitary,
		Cost:     Cost{Resources: res(r(3, "Clay"), r(1, "Wood"))},
		FreeWith: "Archery Range",
		Effect:   Effect{Military: 3}})
	arsenal := building(&Building{Name: "Arsenal", Kind: KindMilitary,
		Cost:   Cost{Resources: res(r(2, "Wood"), r(1, "Ore"), r(1, "Cloth"))},
		Effect: Effect{Military: 3}})

	academy := building(&Building{Name: "Academy", Kind: KindScientific,
		Cost:     Cost{Resources: res(r(3, "Stone"), r(1, "Glass"))},
		FreeWith: "School",
		Effect:   Effect{Sciences: []string{"Geometry"}}})
	observatory := building(&Building{Name: "Observatory", Kind: KindScientific,
		Cost:   Cost{Resources: res(r(2, "Ore"), r(1, "Glass"), r(1, "Cloth"))},
		Effect: Effect{Sciences: []string{"Geometry", "Engineering"}}})
	study := building(&Building{Name: "Study", Kind: KindScientific,
		Cost:   Cost{Resources: res(r(1, "Wood"), r(1, "Papyrus"), r(1, "Cloth"))},
		Effect: Effect{Sciences: []string{"Writing", "Engineering"}}})
	university := building(&Building{Name: "University", Kind: KindScientific,
		Cost:     Cost{Resources: res(r(2, "Wood"), r(1, "Papyrus"), r(1, "Glass"))},
		FreeWith: "Library",
		Effect:   Effect{Sciences: []string{"Writing"}}})

	haven := building(&Building{Name: "Haven", Kind: KindEconomic,
		Cost: Cost{Resources: res(r(1, "Wood"), r(1, "Ore"), r(1, "Cloth"))},
		Effect: Effect{
			KindPaid: KindBasic, MoneyPerLocalBuilding: 1,
			KindsScored: []Kind{KindBasic}, ScorePerLocalBuilding: 1,
		}})
	lighthouse := building(&Building{Name: "Lighthouse", Kind: KindEconomic,
		Cost: Cost{Resources: res(r(1, "Stone"), r(1, "Glass"))},
		Effect: Effect{
			KindPaid: KindEconomic, MoneyPerLocalBuilding: 1,
			KindsScored: []Kind{KindEconomic}, ScorePerLocalBuilding: 1,
		}})
	arena := building(&Building{Name: "Arena", Kind: KindEconomic,
		Cost:   Cost{Resources: res(r(2, "Stone"), r(1, "Ore"))},
		Effect: Effect{MoneyPerLocalSpecial: 3, ScorePerLocalSpecial: 1}})

	philosopher := building(&Building{Name: "The Philosopher", Kind: KindPersonality,
		Cost:   Cost{Resources: res(r(2, "Clay"), r(1, "Papyrus"))},
		Effect: Effect{KindsScored: []Kind{KindScientific}, ScorePerNeighborBuilding: 1}})
	magnate := building(&Building{Name: "The Magnate", Kind: KindPersonality,
		Cost:   Cost{Resources: res(r(2, "Wood"), r(1, "Cloth"))},
		Effect: Effect{KindsScored: []Kind{KindBasic}, ScorePerNeighborBuilding: 1}})
	shipowner := building(&Building{Name: "The Shipowner", Kind: KindPersonality,
		Cost:   Cost{Resources: res(r(2, "Ore"), r(1, "Glass"))},
		Effect: Effect{KindsScored: []Kind{KindBasic, KindComplex}, ScorePerLocalBuilding: 1}})
	strategist := building(&Building{Name: "The Strategist", Kind: KindPersonality,
		Cost:   Cost{Resources: res(r(2, "Ore"), r(1, "Stone"))},
		Effect: Effect{ScorePerNeighborDefeat: 1}})
	governor := building(&Building{Name: "The Governor", Kind: KindPersonality,
		Cost:   Cost{Resources: res(r(2, "Stone"), r(1, "Clay"))},
		Effect: Effect{ScorePerLocalSpecial: 1, ScorePerNeighborSpecial: 1}})
	scholarch := building(&Building{Name: "The Scholarch", Kind: KindPersonality,
		Cost:   Cost{Resources: res(r(1, "Wood"), r(1, "Glass"), r(1, "Papyrus"))},
		Effect: Effect{Sciences: []string{"Writing", "Geometry", "Engineering"}}})

	opt(pantheon, 2, 1, 3)
	opt(gardens, 2, 2, 3)
	opt(townHall, 2, 1, 3)
	opt(townHall, 2, 1, 4)
	opt(palace, 2, 1, 3)
	opt(senate, 2, 1, 3)
	opt(senate, 2, 1, 4)
	opt(fortifications, 2, 1, 3)
	opt(siegeWorks, 2, 1, 3)
	opt(siegeWorks, 2, 1, 4)
	opt(arsenal, 2, 1, 3)
	opt(arsenal, 2, 1, 4)
	opt(academy, 2, 1, 3)
	opt(academy, 2, 1, 4)
	opt(observatory, 2, 1, 3)
	opt(study, 2, 2, 3)
	opt(university, 2, 1, 3)
	opt(university, 2, 1, 4)
	opt(haven, 2, 1, 3)
	opt(haven, 2, 1, 4)
	opt(lighthouse, 2, 1, 3)
	opt(arena, 2, 1, 3)
	opt(arena, 2, 1, 4)
	opt(philosopher, 2, 1, 3)
	opt(magnate, 2, 1, 3)
	opt(shipowner, 2, 1, 3)
	opt(strategist, 2, 1, 3)
	opt(governor, 2, 1, 3)
	opt(scholarch, 2, 1, 4)

	// City special tracks

	special := func(city, variant string, order int, cost Cost, effect Effect) {
		c.Specials = append(c.Specials, CitySpecial{
			City: city, Variant: variant, Order: order, Cost: cost, Effect: effect,
		})
	}

	special("Athenai", "day", 0, Cost{Resources: res(r(2, "Wood"))}, Effect{Score: 3})
	special("Athenai", "day", 1, Cost{Resources: res(r(2, "Ore"), r(1, "Glass"))},
		Effect{Sciences: []string{"Writing", "Geometry", "Engineering"}})
	special("Athenai", "day", 2, Cost{Resources: res(r(2, "Stone"), r(2, "Clay"))}, Effect{Score: 7})
	special("Athenai", "night", 0, Cost{Resources: res(r(2, "Clay"))},
		Effect{Production: produce(r(1, "Wood"), r(1, "Stone"), r(1, "Clay"), r(1, "Ore"))})
	special("Athenai", "night", 1, Cost{Resources: res(r(1, "Ore"), r(2, "Wood"))},
		Effect{Score: 3, Production: &Cost{Money: 4}})
	special("Athenai", "night", 2, Cost{Resources: res(r(3, "Stone"), r(1, "Cloth"))}, Effect{Score: 7})

	special("Sparte", "day", 0, Cost{Resources: res(r(1, "Wood"), r(1, "Clay"))}, Effect{Score: 3})
	special("Sparte", "day", 1, Cost{Resources: res(r(3, "Stone"))}, Effect{Military: 2})
	special("Sparte", "day", 2, Cost{Resources: res(r(3, "Ore"), r(1, "Glass"))}, Effect{Score: 7})
	special("Sparte", "night", 0, Cost{Resources: res(r(1, "Ore"))}, Effect{Military: 1})
	special("Sparte", "night", 1, Cost{Resources: res(r(3, "Clay"))}, Effect{Military: 2, Score: 3})
	special("Sparte", "night", 2, Cost{Resources: res(r(3, "Ore"), r(1, "Papyrus"))},
		Effect{Score: 5, ScorePerNeighborDefeat: 1})

	special("Korinthos", "day", 0, Cost{Resources: res(r(2, "Stone"))}, Effect{Score: 3})
	special("Korinthos", "day", 1, Cost{Resources: res(r(2, "Ore"))}, Effect{FreeBuilding: true})
	special("Korinthos", "day", 2, Cost{Resources: res(r(3, "Clay"), r(1, "Papyrus"))}, Effect{Score: 7})
	special("Korinthos", "night", 0, Cost{Resources: res(r(1, "Wood"))},
		Effect{
			Trade:      &Cost{Money: 1, Resources: res(r(1, "Wood"), r(1, "Stone"), r(1, "Clay"), r(1, "Ore"))},
			LeftTrade:  true,
			RightTrade: true,
		})
	special("Korinthos", "night", 1, Cost{Resources: res(r(2, "Ore"), r(1, "Glass"))}, Effect{Score: 5})
	special("Korinthos", "night", 2, Cost{Resources: res(r(4, "Clay"))}, Effect{Score: 7})

	special("Thebai", "day", 0, Cost{Resources: res(r(1, "Clay"), r(1, "Ore"))}, Effect{Score: 3})
	special("Thebai", "day", 1, Cost{Resources: res(r(3, "Wood"))},
		Effect{Production: produce(r(1, "Glass"), r(1, "Cloth"), r(1, "Papyrus"))})
	special("Thebai", "day", 2, Cost{Resources: res(r(4, "Stone"))}, Effect{Score: 7})
	special("Thebai", "night", 0, Cost{Resources: res(r(2, "Clay"))},
		Effect{Production: &Cost{Money: 9}})
	special("Thebai", "night", 1, Cost{Resources: res(r(3, "Stone"))}, Effect{Score: 4, Military: 1})
	special("Thebai", "night", 2, Cost{Resources: res(r(2, "Stone"), r(2, "Ore"), r(1, "Cloth"))},
		Effect{Score: 7})

	return c
}
