package rules

import (
	"fmt"
	"sort"
	"strings"
)

// Cost is a bundle of money plus resource amounts. Besides plain costs it
// doubles as an income description (production) and as trade terms, where
// Money is the per-unit price and the resources are the tradeable set.
type Cost struct {
	Money     int            `json:"money,omitempty"`
	Resources map[string]int `json:"resources,omitempty"`
}

// CostLine is a single resource entry of a cost.
type CostLine struct {
	Amount   int
	Resource string
}

// Free reports whether the cost demands nothing at all.
func (c Cost) Free() bool {
	if c.Money != 0 {
		return false
	}
	for _, amount := range c.Resources {
		if amount != 0 {
			return false
		}
	}
	return true
}

// Lines returns the resource entries in resource-name order. Zero amounts
// are skipped.
func (c Cost) Lines() []CostLine {
	lines := make([]CostLine, 0, len(c.Resources))
	for resource, amount := range c.Resources {
		if amount > 0 {
			lines = append(lines, CostLine{Amount: amount, Resource: resource})
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Resource < lines[j].Resource })
	return lines
}

func (c Cost) String() string {
	if c.Free() {
		return "Free"
	}
	parts := make([]string, 0, len(c.Resources)+1)
	if c.Money > 0 {
		parts = append(parts, fmt.Sprintf("$%d", c.Money))
	}
	for _, line := range c.Lines() {
		parts = append(parts, fmt.Sprintf("%d×%s", line.Amount, line.Resource))
	}
	return strings.Join(parts, ", ")
}
