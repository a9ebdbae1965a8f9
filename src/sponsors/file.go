package sponsors

import (
	"context"
	"fmt"

	"github.com/sofmeright/readmesync/src/fetch"
)

// List is a static sponsor list kept in a JSON, YAML or TOML file (or URL),
// for sponsors that arrive through channels without an API.
type List struct {
	Location string
	Options  fetch.Options
}

type listFile struct {
	Sponsors []Sponsorship `json:"sponsors" yaml:"sponsors" toml:"sponsors"`
}

func (l *List) Name() string { return "file" }

func (l *List) Sponsorships(ctx context.Context) ([]Sponsorship, error) {
	data, err := fetch.Bytes(ctx, l.Location, l.Options)
	if err != nil {
		return nil, fmt.Errorf("sponsors: list: %w", err)
	}
	var f listFile
	if err := decode(l.Location, data, &f); err != nil {
		return nil, err
	}
	return f.Sponsors, nil
}
