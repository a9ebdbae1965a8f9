package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/readmesync/src/config"
	"github.com/sofmeright/readmesync/src/fetch"
	"github.com/sofmeright/readmesync/src/output"
	"github.com/sofmeright/readmesync/src/readme"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	prev := out
	out = &output.Printer{Out: &stdout, Err: &stderr}
	t.Cleanup(func() { out = prev })
	return &stdout, &stderr
}

func testConfig(t *testing.T, content string) *config.Config {
	t.Helper()

	t.Chdir(t.TempDir())
	c, err := config.Load("")
	require.NoError(t, err)
	c.File = filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(c.File, []byte(content), 0o644))
	return c
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func fragment(t *testing.T, s string) readme.Fetcher {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fragment.html")
	require.NoError(t, os.WriteFile(path, []byte(s), 0o644))
	return fetch.FileSource{Path: path}
}

func TestRunUpdateWritesAndReports(t *testing.T) {
	stdout, _ := capture(t)
	c := testConfig(t, "## Sponsors\n")

	require.NoError(t, runUpdate(context.Background(), c, fragment(t, "<div>X</div>"), false))
	assert.Equal(t, "## Sponsors\n\n<div>X</div>\n\n", readFile(t, c.File))
	assert.Equal(t, "  readme "+c.File+" (updated)\n", stdout.String())

	stdout.Reset()
	require.NoError(t, runUpdate(context.Background(), c, fragment(t, "<div>X</div>"), false))
	assert.Equal(t, "  readme "+c.File+" (unchanged)\n", stdout.String())
}

func TestRunUpdateMarkerMissingIsWarning(t *testing.T) {
	for _, mode := range []string{"single", "dual"} {
		t.Run(mode, func(t *testing.T) {
			_, stderr := capture(t)
			c := testConfig(t, "# Title\n")
			c.Mode = mode

			require.NoError(t, runUpdate(context.Background(), c, fragment(t, "X"), false))
			assert.Contains(t, stderr.String(), "warning:")
			assert.Equal(t, "# Title\n", readFile(t, c.File))
		})
	}
}

func TestRunUpdateStrictFails(t *testing.T) {
	capture(t)
	c := testConfig(t, "# Title\n<!-- start-insert -->\n")
	c.Mode = "dual"
	c.Strict = true

	err := runUpdate(context.Background(), c, fragment(t, "X"), false)
	assert.ErrorIs(t, err, readme.ErrEndMarkerNotFound)
}

func TestRunUpdateMissingFileFails(t *testing.T) {
	capture(t)
	c := testConfig(t, "")
	c.File = filepath.Join(t.TempDir(), "missing.md")

	err := runUpdate(context.Background(), c, fragment(t, "X"), false)
	assert.ErrorIs(t, err, readme.ErrFileNotFound)
}

func TestRunUpdateDryRun(t *testing.T) {
	stdout, _ := capture(t)
	c := testConfig(t, "A\n<!-- start-insert -->\nold\n<!-- end-insert -->\n")
	c.Markers.Start = config.DefaultStartMarker

	require.NoError(t, runUpdate(context.Background(), c, fragment(t, "new"), true))
	assert.Contains(t, stdout.String(), "(dry-run)")
	assert.Contains(t, stdout.String(), "<!-- start-insert -->\nnew\n<!-- end-insert -->\n")
	assert.Contains(t, readFile(t, c.File), "old")
}

func TestUpdateFlagsOverrideConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	var f updateFlags
	addUpdateFlags(cmd, &f)
	require.NoError(t, cmd.ParseFlags([]string{"--file", "docs/README.md", "--start", "<!-- s -->", "--strict"}))

	c := testConfig(t, "")
	c.Markers.Line = "## Backers"
	f.apply(cmd, c)

	assert.Equal(t, "docs/README.md", c.File)
	assert.Equal(t, "<!-- s -->", c.Markers.Start)
	assert.Equal(t, "## Backers", c.Markers.Line, "unset flags keep config values")
	assert.True(t, c.Strict)
	assert.False(t, c.Git.Commit)
}

func TestUpdateCommandFromEnvironment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("NEW"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("README.md", []byte("A\n<!-- s -->\nOLD\n<!-- e -->\nB\n"), 0o644))
	for _, k := range []string{"FILE_PATH", "UPDATE_MODE", "MARKER_LINE", "MARKUP_TOKEN", "FETCH_TIMEOUT"} {
		t.Setenv(k, "")
	}
	t.Setenv("MARKUP_URL", srv.URL)
	t.Setenv("START_MARKER", "<!-- s -->")
	t.Setenv("END_MARKER", "<!-- e -->")

	stdout, _ := capture(t)
	rootCmd.SetArgs([]string{"update"})
	require.NoError(t, Execute())

	assert.Equal(t, "A\n<!-- s -->\nNEW\n<!-- e -->\nB\n", readFile(t, filepath.Join(dir, "README.md")))
	assert.Contains(t, stdout.String(), "(updated)")
}

func TestSponsorsSourceRequiresProvider(t *testing.T) {
	c := testConfig(t, "")
	c.Sponsors = config.DefaultSponsorsConfig()

	_, err := sponsorsSource(c)
	assert.Error(t, err)

	c.Sponsors.File = "sponsors.yml"
	src, err := sponsorsSource(c)
	require.NoError(t, err)
	assert.Equal(t, "sponsors(file)", src.String())
}

func TestSponsorsSourceOrder(t *testing.T) {
	c := testConfig(t, "")
	c.Sponsors = config.DefaultSponsorsConfig()
	c.Sponsors.File = "sponsors.yml"
	c.Sponsors.Polar.Token = "polar"
	c.Sponsors.GitHub.Token = "github"

	src, err := sponsorsSource(c)
	require.NoError(t, err)
	assert.Equal(t, "sponsors(github, polar, file)", src.String())
}

func TestSponsorsUpdateDualModeKeepsOneList(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("README.md", []byte("# P\n\n<!-- start-insert -->\n<!-- end-insert -->\n"), 0o644))
	for _, k := range []string{"FILE_PATH", "UPDATE_MODE", "MARKER_LINE", "START_MARKER", "END_MARKER",
		"GH_TOKEN", "GITHUB_TOKEN", "POLAR_TOKEN", "LOGO_DATA_SOURCE"} {
		t.Setenv(k, "")
	}
	t.Setenv("SPONSORS_FILE", "sponsors.yml")

	capture(t)
	for _, name := range []string{"acme", "globex"} {
		list := "sponsors:\n  - account: {name: " + name + ", url: \"https://" + name + ".dev\", image: " + name + ".png}\n    amount: 5\n"
		require.NoError(t, os.WriteFile("sponsors.yml", []byte(list), 0o644))
		rootCmd.SetArgs([]string{"sponsors", "update", "--start", "<!-- start-insert -->", "--end", "<!-- end-insert -->"})
		require.NoError(t, Execute())
	}

	got := readFile(t, filepath.Join(dir, "README.md"))
	assert.Contains(t, got, "globex")
	assert.NotContains(t, got, "acme", "the previous list is replaced")
	assert.Contains(t, sponsorsUpdateCmd.Long, "never removed")
}
