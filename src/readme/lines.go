package readme

import "strings"

// SplitLines splits content into lines that keep their terminators.
// A final line without a terminator is kept as-is; empty content yields nil.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(content, "\n")+1)
	for content != "" {
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:idx+1])
		content = content[idx+1:]
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

// terminator returns the line ending of line: "\r\n", "\n", or "".
func terminator(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	}
	return ""
}

// matches reports whether line is a marker line for marker.
func matches(line, marker string) bool {
	return strings.TrimSpace(line) == marker
}

// terminate appends eol to s unless s already ends with a newline.
func terminate(s, eol string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + eol
}
