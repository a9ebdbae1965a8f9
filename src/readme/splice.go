package readme

// A document is scanned line by line. Marker lines are matched on their
// trimmed text, so indentation and trailing spaces around a marker are
// tolerated. Every line that is not part of the spliced region is copied
// through with its original terminator.

// InsertAfterMarker inserts fragment after the first line matching marker,
// padded by one blank line on each side:
//
//	## Sponsors
//
//	<fragment>
//
// Later marker lines are ordinary text. If the padded fragment already
// follows the marker, content is returned unchanged so repeated runs with the
// same fragment do not stack copies. A different fragment is inserted above
// the previous one, which is left in place; use ReplaceBetweenMarkers to
// replace a region. Returns ErrMarkerNotFound when no line matches.
func InsertAfterMarker(content, marker, fragment string) (string, error) {
	lines := SplitLines(content)
	for i, line := range lines {
		if !matches(line, marker) {
			continue
		}

		eol := terminator(line)
		if eol == "" {
			eol = "\n"
		}
		head := JoinLines(lines[:i]) + terminate(line, eol)
		tail := JoinLines(lines[i+1:])
		block := eol + terminate(fragment, eol) + eol

		if len(tail) >= len(block) && tail[:len(block)] == block {
			return content, nil
		}
		return head + block + tail, nil
	}
	return content, ErrMarkerNotFound
}

// scanState tracks where the dual-marker scan is relative to the region.
type scanState int

const (
	stateBefore scanState = iota // start marker not seen yet
	stateInside                  // between start and end, lines are dropped
	stateAfter                   // region closed, lines copied verbatim
)

// ReplaceBetweenMarkers replaces every line strictly between the first start
// marker line and the next end marker line with fragment. Marker lines are
// kept. End markers before the start marker, and any marker after the region
// closes, are ordinary lines.
//
// Returns ErrStartMarkerNotFound if no start marker exists and
// ErrEndMarkerNotFound if the region is never closed. content is returned
// unchanged with either error.
func ReplaceBetweenMarkers(content, start, end, fragment string) (string, error) {
	lines := SplitLines(content)
	out := make([]string, 0, len(lines)+1)
	state := stateBefore

	for _, line := range lines {
		switch state {
		case stateBefore:
			out = append(out, line)
			if matches(line, start) {
				eol := terminator(line)
				if eol == "" {
					eol = "\n"
				}
				out = append(out, terminate(fragment, eol))
				state = stateInside
			}
		case stateInside:
			if matches(line, end) {
				out = append(out, line)
				state = stateAfter
			}
		case stateAfter:
			out = append(out, line)
		}
	}

	switch state {
	case stateBefore:
		return content, ErrStartMarkerNotFound
	case stateInside:
		return content, ErrEndMarkerNotFound
	}
	return JoinLines(out), nil
}

// Splice applies the strategy selected by m to content.
func Splice(content string, m Markers, fragment string) (string, error) {
	if m.Mode == ModeDual {
		return ReplaceBetweenMarkers(content, m.Start, m.End, fragment)
	}
	return InsertAfterMarker(content, m.Line, fragment)
}
