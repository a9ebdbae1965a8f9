package sponsors

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// decode unmarshals data into v, choosing the format from the extension of
// location. JSON is the default.
func decode(location string, data []byte, v any) error {
	loc := location
	if i := strings.IndexAny(loc, "?#"); i >= 0 {
		loc = loc[:i]
	}

	var err error
	switch strings.ToLower(path.Ext(loc)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, v)
	case ".toml":
		err = toml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("sponsors: parse %s: %w", location, err)
	}
	return nil
}
