package sponsors

import (
	"context"
	"fmt"
	"strings"

	"github.com/sofmeright/readmesync/src/fetch"
)

// Provider yields sponsorships from one platform or list.
type Provider interface {
	Name() string
	Sponsorships(ctx context.Context) ([]Sponsorship, error)
}

// Source renders the sponsors fragment on demand. It satisfies the fetcher
// contract of the readme updater, so rendered sponsors can be spliced like
// any remote fragment.
type Source struct {
	Providers []Provider
	Logos     string // logo override location, optional
	Options   fetch.Options
}

func (s *Source) String() string {
	names := make([]string, len(s.Providers))
	for i, p := range s.Providers {
		names[i] = p.Name()
	}
	return "sponsors(" + strings.Join(names, ", ") + ")"
}

// Collect queries every provider in order and merges the results.
func (s *Source) Collect(ctx context.Context) (*Sponsors, error) {
	if len(s.Providers) == 0 {
		return nil, fmt.Errorf("sponsors: no sponsor sources configured")
	}
	all := &Sponsors{}
	for _, p := range s.Providers {
		sps, err := p.Sponsorships(ctx)
		if err != nil {
			return nil, err
		}
		all.Merge(sps)
	}
	return all, nil
}

// Fetch collects sponsorships, loads logo overrides, and renders the fragment.
func (s *Source) Fetch(ctx context.Context) (string, error) {
	logos, err := LoadLogos(ctx, s.Logos, s.Options)
	if err != nil {
		return "", err
	}
	all, err := s.Collect(ctx)
	if err != nil {
		return "", err
	}
	return Render(all, logos), nil
}
