package engine

// Config holds the tunable rule constants for a game.
type Config struct {
	MinimumPlayers       int // players required to start
	InitialOptions       int // hand size dealt at each age start
	TurnCount            int // turns per age
	InitialMoney         int // treasury at join time
	SellValue            int // money credited for a sold option
	DefaultTradeCost     int // per-unit neighbor trade price without discounts
	ScienceScorePerGroup int // bonus per complete science group
}

// DefaultConfig returns the standard rule constants.
func DefaultConfig() Config {
	return Config{
		MinimumPlayers:       3,
		InitialOptions:       7,
		TurnCount:            6,
		InitialMoney:         3,
		SellValue:            3,
		DefaultTradeCost:     2,
		ScienceScorePerGroup: 7,
	}
}
