// Package economy decides whether and how a cost can be covered from own
// production, treasury and neighbor trade. It enumerates every feasible
// payment plan; the caller picks the one matching the player's declared
// trade split.
package economy

import (
	"sort"

	"polis/internal/rules"
)

// PaymentOption is one concrete way to cover a cost: money paid directly
// toward the cost's money component plus money paid to each neighbor for
// the resources bought from them.
type PaymentOption struct {
	Money      int `json:"money"`
	TradeLeft  int `json:"trade_left"`
	TradeRight int `json:"trade_right"`
}

// Total is the overall money the option removes from the payer.
func (p PaymentOption) Total() int {
	return p.Money + p.TradeLeft + p.TradeRight
}

// Source is one production source: a set of alternative resource lines.
// Covering any one resource from a source consumes the entire source.
type Source []rules.CostLine

// Neighbor describes what one neighbor can sell and at which per-unit
// price, as seen by the payer (trade-discount effects already folded in).
type Neighbor struct {
	Offers       []Source
	Prices       map[string]int
	DefaultPrice int
}

func (n Neighbor) price(resource string) int {
	if p, ok := n.Prices[resource]; ok {
		return p
	}
	return n.DefaultPrice
}

const (
	useLocal = iota
	useLeft
	useRight
)

type source struct {
	lines Source
	from  int
}

// Payments enumerates the feasible payment options for the given cost. A
// resource unit can be covered by an unused local source offering it
// (free) or bought from a neighbor offering it, at that neighbor's price.
// The cost's money component is always paid from the treasury; priced
// resources are never bought with direct money. Options exceeding the
// available money are discarded.
func Payments(cost rules.Cost, money int, local []Source, left, right Neighbor) []PaymentOption {
	need := make(map[string]int, len(cost.Resources))
	remaining := 0
	for resource, amount := range cost.Resources {
		if amount > 0 {
			need[resource] = amount
			remaining += amount
		}
	}

	var sources []source
	for _, s := range local {
		sources = append(sources, source{lines: s, from: useLocal})
	}
	for _, s := range left.Offers {
		sources = append(sources, source{lines: s, from: useLeft})
	}
	for _, s := range right.Offers {
		sources = append(sources, source{lines: s, from: useRight})
	}

	seen := make(map[PaymentOption]struct{})
	var options []PaymentOption

	var walk func(i, tradeLeft, tradeRight int)
	walk = func(i, tradeLeft, tradeRight int) {
		if remaining == 0 || i == len(sources) {
			if remaining > 0 {
				return
			}
			opt := PaymentOption{Money: cost.Money, TradeLeft: tradeLeft, TradeRight: tradeRight}
			if opt.Total() > money {
				return
			}
			if _, dup := seen[opt]; dup {
				return
			}
			seen[opt] = struct{}{}
			options = append(options, opt)
			return
		}

		// Leave this source unused.
		walk(i+1, tradeLeft, tradeRight)

		// Or consume it for exactly one of its alternative resources.
		for _, line := range sources[i].lines {
			pending := need[line.Resource]
			if pending == 0 {
				continue
			}
			take := line.Amount
			if take > pending {
				take = pending
			}
			need[line.Resource] -= take
			remaining -= take
			switch sources[i].from {
			case useLocal:
				walk(i+1, tradeLeft, tradeRight)
			case useLeft:
				walk(i+1, tradeLeft+take*left.price(line.Resource), tradeRight)
			case useRight:
				walk(i+1, tradeLeft, tradeRight+take*right.price(line.Resource))
			}
			need[line.Resource] += take
			remaining += take
		}
	}
	walk(0, 0, 0)

	sort.Slice(options, func(i, j int) bool {
		if options[i].TradeLeft != options[j].TradeLeft {
			return options[i].TradeLeft < options[j].TradeLeft
		}
		return options[i].TradeRight < options[j].TradeRight
	})
	return options
}

// CanPay selects, from the enumerated options, the one whose trade amounts
// exactly match the declared split. The second result is false when no
// feasible option uses those amounts.
func CanPay(options []PaymentOption, tradeLeft, tradeRight int) (PaymentOption, bool) {
	for _, opt := range options {
		if opt.TradeLeft == tradeLeft && opt.TradeRight == tradeRight {
			return opt, true
		}
	}
	return PaymentOption{}, false
}
