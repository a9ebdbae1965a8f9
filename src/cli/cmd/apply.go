package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofmeright/readmesync/src/config"
	"github.com/sofmeright/readmesync/src/guard"
	"github.com/sofmeright/readmesync/src/output"
	"github.com/sofmeright/readmesync/src/readme"
	"github.com/sofmeright/readmesync/src/vcs"
)

// updateFlags are shared by every command that rewrites a document.
type updateFlags struct {
	file        string
	mode        string
	marker      string
	start       string
	end         string
	dryRun      bool
	strict      bool
	scanSecrets bool
	commit      bool
	message     string
}

func addUpdateFlags(cmd *cobra.Command, f *updateFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "document to update (env FILE_PATH, default README.md)")
	fl.StringVar(&f.mode, "mode", "", "single or dual (env UPDATE_MODE, default: dual if start/end markers are set)")
	fl.StringVar(&f.marker, "marker", "", "single-mode marker line (env MARKER_LINE, default \"## Sponsors\")")
	fl.StringVar(&f.start, "start", "", "dual-mode start marker (env START_MARKER, default \"<!-- start-insert -->\")")
	fl.StringVar(&f.end, "end", "", "dual-mode end marker (env END_MARKER, default \"<!-- end-insert -->\")")
	fl.BoolVar(&f.dryRun, "dry-run", false, "print the updated document instead of writing it")
	fl.BoolVar(&f.strict, "strict", false, "exit non-zero when a marker is not found")
	fl.BoolVar(&f.scanSecrets, "scan-secrets", false, "refuse fragments that look like they contain credentials")
	fl.BoolVar(&f.commit, "commit", false, "commit the updated document to the enclosing git repository")
	fl.StringVar(&f.message, "message", "", "commit message (default \"docs: update sponsors\")")
}

// apply overrides configuration with flags the user set explicitly.
func (f *updateFlags) apply(cmd *cobra.Command, c *config.Config) {
	fl := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if fl.Changed(name) {
			*dst = v
		}
	}
	set("file", &c.File, f.file)
	set("mode", &c.Mode, f.mode)
	set("marker", &c.Markers.Line, f.marker)
	set("start", &c.Markers.Start, f.start)
	set("end", &c.Markers.End, f.end)
	set("message", &c.Git.Message, f.message)
	if fl.Changed("strict") {
		c.Strict = f.strict
	}
	if fl.Changed("scan-secrets") {
		c.Guard.Secrets = f.scanSecrets
	}
	if fl.Changed("commit") {
		c.Git.Commit = f.commit
	}
}

// runUpdate splices the fragment from src into the configured document and
// reports the outcome. Marker-not-found in either mode is a warning unless
// strict is set; every other failure is returned.
func runUpdate(ctx context.Context, c *config.Config, src readme.Fetcher, dryRun bool) error {
	markers, err := c.ReadmeMarkers()
	if err != nil {
		return err
	}

	u := &readme.Updater{Markers: markers, DryRun: dryRun}
	if c.Guard.Secrets {
		s, err := guard.NewSecrets()
		if err != nil {
			return err
		}
		u.Check = s.Check
	}

	out.Debugf("updating %s (%s mode) from %s", c.File, markers.Mode, src)
	start := time.Now()
	res, err := u.Update(ctx, c.File, src)
	if err != nil {
		if readme.IsMarkerError(err) && !c.Strict {
			out.Warn("%v; %s left unchanged", err, c.File)
			return nil
		}
		return err
	}

	if out.Verbose {
		sec := output.NewSection(out.Err, "readme", time.Since(start), out.Color)
		sec.KV("file", res.Path)
		sec.KV("mode", res.Mode.String())
		sec.KV("source", src.String())
		sec.KV("changed", fmt.Sprintf("%t", res.Changed))
		sec.Close()
	}

	switch {
	case dryRun:
		out.Status(res.Path, output.StateDryRun)
		if res.Changed {
			fmt.Fprint(out.Out, res.Content)
		}
		return nil
	case !res.Written:
		out.Status(res.Path, output.StateUnchanged)
		return nil
	}
	out.Status(res.Path, output.StateUpdated)

	if !c.Git.Commit {
		return nil
	}
	hash, err := vcs.CommitFile(res.Path, c.Git.Message, vcs.Author{Name: c.Git.AuthorName, Email: c.Git.AuthorEmail})
	if err != nil {
		if errors.Is(err, vcs.ErrNothingToCommit) {
			out.Debugf("%s: nothing to commit", res.Path)
			return nil
		}
		return err
	}
	out.Status(res.Path, output.StateCommitted+" "+shortHash(hash))
	return nil
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
