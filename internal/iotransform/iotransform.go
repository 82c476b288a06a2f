// Package iotransform implements the Transformer interface: streaming
// rewrite of dump files through the matcher chain, one line at a time.
package iotransform

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/remaplab/remapdb/internal/iostream"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/dumpfile"
	"github.com/remaplab/remapdb/pkg/mapping"
	"github.com/remaplab/remapdb/pkg/matcher"
	"github.com/remaplab/remapdb/pkg/remapdb"
	"golang.org/x/sync/errgroup"
)

// transformer implements the Transformer interface.
type transformer struct {
	cfg      *config.Config
	store    mapping.Lookup
	matchers []matcher.Matcher
}

// New creates a new Transformer over the given mapping store. The
// matcher chain is compiled once and shared by all files.
func New(cfg *config.Config, st mapping.Lookup) remapdb.Transformer {
	return &transformer{
		cfg:      cfg,
		store:    st,
		matchers: matcher.NewAll(&cfg.Identifier),
	}
}

// TransformFile processes one dump file. A fresh input file produces
// a sibling with the transformed suffix; a file that already carries
// the suffix is rewritten in place, which is what reconciliation runs
// rely on. Either way the result appears atomically via rename.
func (t *transformer) TransformFile(
	ctx context.Context,
	path string,
) (*remapdb.TransformationRun, error) {
	return t.run(ctx, path, true)
}

func (t *transformer) run(
	ctx context.Context,
	path string,
	progress bool,
) (*remapdb.TransformationRun, error) {
	out := dumpfile.TransformedName(path)

	res := &remapdb.TransformationRun{
		ID:     uuid.NewString(),
		Input:  path,
		Output: out,
	}

	if err := ctx.Err(); err != nil {
		res.Err = TransformRunError(path, err)
		return res, res.Err
	}

	total, err := iostream.CountLines(path)
	if err != nil {
		res.Err = err
		return res, err
	}

	stats := make([]remapdb.MatcherStats, len(t.matchers))
	for i, m := range t.matchers {
		stats[i].Name = m.Name()
	}

	fn := func(line string) string {
		for i, m := range t.matchers {
			var replaced, unmapped int
			line, replaced, unmapped = m.FindReplace(line, t.store)
			stats[i].Replaced += replaced
			stats[i].Unmapped += unmapped
		}
		return line
	}

	barTotal := 0
	if progress {
		barTotal = total
	}
	prefix := filepath.Base(path) + ": "

	lines, err := iostream.Process(path, out, barTotal, prefix, fn)
	res.Lines = lines
	res.Matchers = stats
	if err != nil {
		res.Err = err
		return res, err
	}

	slog.Info("File transformed",
		"input", path,
		"output", out,
		"lines", lines,
		"replaced", res.Replaced(),
		"unmapped", res.Unmapped(),
	)
	return res, nil
}

// TransformAll processes paths concurrently, bounded by the configured
// jobs number. One failing file does not stop the others; its run
// report carries the error. Progress bars are suppressed when files
// run in parallel because interleaved bars are unreadable.
func (t *transformer) TransformAll(
	ctx context.Context,
	paths []string,
) ([]*remapdb.TransformationRun, error) {
	if len(paths) == 0 {
		gn.Warn("No dump files to transform.")
		return nil, nil
	}

	start := time.Now()
	jobs := t.cfg.JobsNumber
	if jobs < 1 {
		jobs = 1
	}
	progress := jobs == 1

	runs := make([]*remapdb.TransformationRun, len(paths))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(jobs)

	for i, path := range paths {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				// Cancellation is the only error that stops the group.
				return err
			}
			res, err := t.run(gctx, path, progress)
			runs[i] = res
			if err != nil {
				gn.Warn("Failed <em>%s</em>: %s", path, err.Error())
				slog.Error("File transformation failed",
					"input", path, "error", err)
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return runs, TransformRunError("", err)
	}

	var failed int
	var lines, replaced, unmapped int
	for _, r := range runs {
		if r == nil || r.Err != nil {
			failed++
			continue
		}
		lines += r.Lines
		replaced += r.Replaced()
		unmapped += r.Unmapped()
	}

	if failed == len(paths) {
		return runs, AllFilesFailedError(len(paths))
	}

	dur := time.Since(start)
	slog.Info("Transformation complete",
		"files", len(paths)-failed,
		"failed", failed,
		"lines", lines,
		"replaced", replaced,
		"unmapped", unmapped,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(`Transformation complete
Files: %d (failed: %d), lines: %s
Replaced: <em>%s</em>, unmapped: <em>%s</em>
Elapsed time: <em>%s</em>
`,
		len(paths)-failed,
		failed,
		humanize.Comma(int64(lines)),
		humanize.Comma(int64(replaced)),
		humanize.Comma(int64(unmapped)),
		gnfmt.TimeString(dur.Seconds()),
	)

	return runs, nil
}
