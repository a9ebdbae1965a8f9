package sponsors

import (
	"context"
	"fmt"

	"github.com/sofmeright/readmesync/src/fetch"
)

// Logo overrides how a sponsor is displayed, typically with a company logo
// instead of an avatar.
type Logo struct {
	Name   string
	URL    string
	Light  string // image for light color schemes (or the only image)
	Dark   string // optional image for dark color schemes
	Height int    // pixels, 0 selects the default
}

// Logos maps account names to their display overrides.
type Logos map[string]Logo

// rawLogo is the on-disk shape. "logo" is either a single image URL or a
// [light, dark] pair.
type rawLogo struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	URL    string `json:"url" yaml:"url" toml:"url"`
	Logo   any    `json:"logo" yaml:"logo" toml:"logo"`
	Height int    `json:"height" yaml:"height" toml:"height"`
}

// LoadLogos reads logo overrides from a URL or path. An empty location
// yields no overrides.
func LoadLogos(ctx context.Context, location string, opts fetch.Options) (Logos, error) {
	if location == "" {
		return Logos{}, nil
	}

	data, err := fetch.Bytes(ctx, location, opts)
	if err != nil {
		return nil, fmt.Errorf("sponsors: logo data: %w", err)
	}
	return ParseLogos(location, data)
}

// ParseLogos decodes logo overrides; the format follows the extension of
// location (JSON, YAML or TOML).
func ParseLogos(location string, data []byte) (Logos, error) {
	raw := map[string]rawLogo{}
	if err := decode(location, data, &raw); err != nil {
		return nil, err
	}

	logos := make(Logos, len(raw))
	for account, r := range raw {
		l := Logo{Name: r.Name, URL: r.URL, Height: r.Height}
		switch v := r.Logo.(type) {
		case nil:
		case string:
			l.Light = v
		case []any:
			if len(v) != 2 {
				return nil, fmt.Errorf("sponsors: logo for %s: expected [light, dark], got %d images", account, len(v))
			}
			light, ok1 := v[0].(string)
			dark, ok2 := v[1].(string)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("sponsors: logo for %s: images must be strings", account)
			}
			l.Light, l.Dark = light, dark
		default:
			return nil, fmt.Errorf("sponsors: logo for %s: unsupported value %T", account, v)
		}
		logos[account] = l
	}
	return logos, nil
}
