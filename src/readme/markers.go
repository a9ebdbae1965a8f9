package readme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the splice strategy.
type Mode int

const (
	// ModeSingle inserts the fragment after one marker line.
	ModeSingle Mode = iota
	// ModeDual replaces everything between a start and an end marker line.
	ModeDual
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeDual:
		return "dual"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "single" or "dual" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return ModeSingle, nil
	case "dual":
		return ModeDual, nil
	}
	return ModeSingle, fmt.Errorf("unknown mode %q (expected \"single\" or \"dual\")", s)
}

// Markers describes where a fragment goes in a document.
type Markers struct {
	Mode  Mode
	Line  string // single mode anchor
	Start string // dual mode region start
	End   string // dual mode region end
}

// SingleMarker returns single-mode markers anchored on line.
func SingleMarker(line string) Markers {
	return Markers{Mode: ModeSingle, Line: line}
}

// DualMarkers returns dual-mode markers delimiting a region.
func DualMarkers(start, end string) Markers {
	return Markers{Mode: ModeDual, Start: start, End: end}
}

// Validate checks that the markers for the selected mode are usable.
// Markers are compared against trimmed lines, so surrounding whitespace
// in the configured value can never match and is rejected.
func (m Markers) Validate() error {
	switch m.Mode {
	case ModeSingle:
		return checkMarker("marker line", m.Line)
	case ModeDual:
		var errs []error
		if err := checkMarker("start marker", m.Start); err != nil {
			errs = append(errs, err)
		}
		if err := checkMarker("end marker", m.End); err != nil {
			errs = append(errs, err)
		}
		if len(errs) == 0 && m.Start == m.End {
			errs = append(errs, fmt.Errorf("start and end marker are both %q", m.Start))
		}
		return errors.Join(errs...)
	}
	return fmt.Errorf("unknown mode %v", m.Mode)
}

func checkMarker(what, v string) error {
	switch {
	case v == "":
		return fmt.Errorf("%s is empty", what)
	case strings.TrimSpace(v) != v:
		return fmt.Errorf("%s %q has surrounding whitespace", what, v)
	case strings.ContainsAny(v, "\r\n"):
		return fmt.Errorf("%s %q spans lines", what, v)
	}
	return nil
}
