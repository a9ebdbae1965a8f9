// Package sponsors collects sponsorships from hosting platforms and static
// lists, and renders them as a tiered HTML fragment for a README.
package sponsors

import (
	"sort"
	"time"
)

// Account is the sponsoring user or organization.
type Account struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	URL       string `json:"url" yaml:"url" toml:"url"`
	Image     string `json:"image" yaml:"image" toml:"image"`
	ImageDark string `json:"image_dark,omitempty" yaml:"image_dark,omitempty" toml:"image_dark,omitempty"`
}

// Sponsorship is one account's recurring (or one-time) support.
type Sponsorship struct {
	Account Account   `json:"account" yaml:"account" toml:"account"`
	Amount  int       `json:"amount" yaml:"amount" toml:"amount"` // monthly, whole currency units
	Created time.Time `json:"created" yaml:"created" toml:"created"`
	Private bool      `json:"private" yaml:"private" toml:"private"`
}

// Sponsors is a merged set of sponsorships.
type Sponsors struct {
	Sponsorships []Sponsorship
}

// Merge adds sponsorships, keeping one entry per account name. When an
// account sponsors through several platforms the larger amount wins and
// the earliest creation time is kept.
func (s *Sponsors) Merge(in []Sponsorship) {
	index := make(map[string]int, len(s.Sponsorships))
	for i, sp := range s.Sponsorships {
		index[sp.Account.Name] = i
	}

	for _, sp := range in {
		i, ok := index[sp.Account.Name]
		if !ok || sp.Account.Name == "" {
			index[sp.Account.Name] = len(s.Sponsorships)
			s.Sponsorships = append(s.Sponsorships, sp)
			continue
		}
		cur := &s.Sponsorships[i]
		created := cur.Created
		if !sp.Created.IsZero() && (created.IsZero() || sp.Created.Before(created)) {
			created = sp.Created
		}
		if sp.Amount > cur.Amount {
			*cur = sp
		}
		cur.Created = created
	}
}

// Tiers are the monthly amounts that earn a premium placement, highest first.
var Tiers = []int{1000, 500, 200, 100}

// Tier returns the highest tier amount reached by amount, or 0.
func Tier(amount int) int {
	for _, t := range Tiers {
		if amount >= t {
			return t
		}
	}
	return 0
}

// Ranked returns sponsorships ordered by tier (highest first), then by
// creation time (oldest first).
func (s *Sponsors) Ranked() []Sponsorship {
	out := make([]Sponsorship, len(s.Sponsorships))
	copy(out, s.Sponsorships)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := Tier(out[i].Amount), Tier(out[j].Amount)
		if ti != tj {
			return ti > tj
		}
		return out[i].Created.Before(out[j].Created)
	})
	return out
}
