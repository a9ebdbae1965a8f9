package readme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLinesKeepsTerminators(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a\n", "b\r\n", "c"}, SplitLines("a\nb\r\nc"))
	assert.Equal(t, []string{"\n", "\n"}, SplitLines("\n\n"))

	for _, in := range []string{"x", "x\n", "a\r\n\r\nb\n", "\n"} {
		assert.Equal(t, in, JoinLines(SplitLines(in)))
	}
}

func TestInsertAfterMarker(t *testing.T) {
	got, err := InsertAfterMarker("## Sponsors\n", "## Sponsors", "<div>X</div>")
	require.NoError(t, err)
	assert.Equal(t, "## Sponsors\n\n<div>X</div>\n\n", got)
}

func TestInsertAfterMarkerKeepsSurroundingLines(t *testing.T) {
	in := "# Title\n\n## Sponsors\n## Licence\nMIT\n"
	got, err := InsertAfterMarker(in, "## Sponsors", "<p>X</p>\n")
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\n## Sponsors\n\n<p>X</p>\n\n## Licence\nMIT\n", got)
}

func TestInsertAfterMarkerMatchesTrimmedLine(t *testing.T) {
	got, err := InsertAfterMarker("  ## Sponsors  \n", "## Sponsors", "X")
	require.NoError(t, err)
	assert.Equal(t, "  ## Sponsors  \n\nX\n\n", got)
}

func TestInsertAfterMarkerFirstMatchOnly(t *testing.T) {
	got, err := InsertAfterMarker("## Sponsors\na\n## Sponsors\n", "## Sponsors", "X")
	require.NoError(t, err)
	assert.Equal(t, "## Sponsors\n\nX\n\na\n## Sponsors\n", got)
}

func TestInsertAfterMarkerUnterminatedLastLine(t *testing.T) {
	got, err := InsertAfterMarker("intro\n## Sponsors", "## Sponsors", "X")
	require.NoError(t, err)
	assert.Equal(t, "intro\n## Sponsors\n\nX\n\n", got)
}

func TestInsertAfterMarkerIdempotent(t *testing.T) {
	once, err := InsertAfterMarker("## Sponsors\nfooter\n", "## Sponsors", "<div>X</div>")
	require.NoError(t, err)

	twice, err := InsertAfterMarker(once, "## Sponsors", "<div>X</div>")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestInsertAfterMarkerDifferentFragmentStacks(t *testing.T) {
	once, err := InsertAfterMarker("## Sponsors\n", "## Sponsors", "old")
	require.NoError(t, err)

	twice, err := InsertAfterMarker(once, "## Sponsors", "new")
	require.NoError(t, err)
	assert.Equal(t, "## Sponsors\n\nnew\n\n\nold\n\n", twice)
}

func TestInsertAfterMarkerCRLF(t *testing.T) {
	got, err := InsertAfterMarker("a\r\n## Sponsors\r\nb\r\n", "## Sponsors", "X")
	require.NoError(t, err)
	assert.Equal(t, "a\r\n## Sponsors\r\n\r\nX\r\n\r\nb\r\n", got)
}

func TestInsertAfterMarkerNotFound(t *testing.T) {
	in := "# Title\nSponsors\n"
	got, err := InsertAfterMarker(in, "## Sponsors", "X")
	assert.ErrorIs(t, err, ErrMarkerNotFound)
	assert.Equal(t, in, got)
}

func TestReplaceBetweenMarkersRoundTrip(t *testing.T) {
	in := "A\n<start>\nOLD\n<end>\nB\n"
	got, err := ReplaceBetweenMarkers(in, "<start>", "<end>", "NEW")
	require.NoError(t, err)
	assert.Equal(t, "A\n<start>\nNEW\n<end>\nB\n", got)

	again, err := ReplaceBetweenMarkers(got, "<start>", "<end>", "NEW")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestReplaceBetweenMarkersTerminatedFragment(t *testing.T) {
	got, err := ReplaceBetweenMarkers("A\n<s>\nOLD\n<e>\nB\n", "<s>", "<e>", "NEW\n")
	require.NoError(t, err)
	assert.Equal(t, "A\n<s>\nNEW\n<e>\nB\n", got, "a trailing newline is not doubled")

	unterminated, err := ReplaceBetweenMarkers("A\n<s>\nOLD\n<e>\nB\n", "<s>", "<e>", "NEW")
	require.NoError(t, err)
	assert.Equal(t, got, unterminated)
}

func TestReplaceBetweenMarkersMultilineRegion(t *testing.T) {
	in := "<start>\n1\n2\n3\n<end>\n"
	got, err := ReplaceBetweenMarkers(in, "<start>", "<end>", "x\ny\n")
	require.NoError(t, err)
	assert.Equal(t, "<start>\nx\ny\n<end>\n", got)
}

func TestReplaceBetweenMarkersEmptyRegion(t *testing.T) {
	got, err := ReplaceBetweenMarkers("<start>\n<end>\n", "<start>", "<end>", "NEW")
	require.NoError(t, err)
	assert.Equal(t, "<start>\nNEW\n<end>\n", got)
}

func TestReplaceBetweenMarkersFirstRegionOnly(t *testing.T) {
	in := "<start>\na\n<end>\n<start>\nb\n<end>\n"
	got, err := ReplaceBetweenMarkers(in, "<start>", "<end>", "N")
	require.NoError(t, err)
	assert.Equal(t, "<start>\nN\n<end>\n<start>\nb\n<end>\n", got)
}

func TestReplaceBetweenMarkersEndBeforeStart(t *testing.T) {
	in := "<end>\n<start>\nold\n<end>\n"
	got, err := ReplaceBetweenMarkers(in, "<start>", "<end>", "N")
	require.NoError(t, err)
	assert.Equal(t, "<end>\n<start>\nN\n<end>\n", got)
}

func TestReplaceBetweenMarkersCRLF(t *testing.T) {
	in := "A\r\n<start>\r\nOLD\r\n<end>\r\nB\r\n"
	got, err := ReplaceBetweenMarkers(in, "<start>", "<end>", "NEW")
	require.NoError(t, err)
	assert.Equal(t, "A\r\n<start>\r\nNEW\r\n<end>\r\nB\r\n", got)
}

func TestReplaceBetweenMarkersMissing(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"only end", "A\n<end>\nB\n", ErrStartMarkerNotFound},
		{"only start", "A\n<start>\nB\n", ErrEndMarkerNotFound},
		{"neither", "A\nB\n", ErrStartMarkerNotFound},
		{"end before start", "<end>\n<start>\n", ErrEndMarkerNotFound},
		{"empty", "", ErrStartMarkerNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReplaceBetweenMarkers(tt.in, "<start>", "<end>", "N")
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestMarkersValidate(t *testing.T) {
	assert.NoError(t, SingleMarker("## Sponsors").Validate())
	assert.NoError(t, DualMarkers("<a>", "<b>").Validate())

	assert.Error(t, SingleMarker("").Validate())
	assert.Error(t, SingleMarker(" ## Sponsors").Validate())
	assert.Error(t, DualMarkers("<a>", "").Validate())
	assert.Error(t, DualMarkers("<a>", "<a>").Validate())
	assert.Error(t, Markers{Mode: Mode(7)}.Validate())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Dual")
	require.NoError(t, err)
	assert.Equal(t, ModeDual, m)

	m, err = ParseMode("single")
	require.NoError(t, err)
	assert.Equal(t, ModeSingle, m)

	_, err = ParseMode("both")
	assert.Error(t, err)
}
