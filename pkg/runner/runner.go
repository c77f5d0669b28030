package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/hongdown/internal/logging"
	"github.com/yaklabco/hongdown/pkg/fsutil"
	"github.com/yaklabco/hongdown/pkg/hongdown"
	"github.com/yaklabco/hongdown/pkg/verify"
)

// Run discovers files and formats them with up to opts.Jobs workers.
// Per-file failures are recorded in the outcomes; the returned error is
// reserved for discovery failures and cancellation.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))
	logger.Debug("formatting files", logging.FieldFiles, len(files), logging.FieldJobs, jobs)

	outcomes := make([]FileOutcome, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		i := i
		path := path
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = processFile(logging.WithFields(groupCtx, logging.FieldPath, path), path, opts)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		if outcome.Error != nil {
			logger.Error("format failed", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
		}
		result.accumulate(outcome)
	}
	return result, nil
}

func processFile(ctx context.Context, path string, opts Options) FileOutcome {
	logger := logging.FromContext(ctx)
	outcome := FileOutcome{Path: path}

	content, state, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Original = string(content)

	res := hongdown.FormatStyle(outcome.Original, opts.Style)
	outcome.Formatted = res.Output
	outcome.Warnings = res.Warnings
	outcome.Changed = res.Output != outcome.Original

	if opts.Verify && outcome.Changed {
		v := verify.New()
		v.IgnoreLanguage = opts.Style.DetectLanguage || opts.Style.DefaultLanguage != ""
		if err := v.Check(outcome.Original, outcome.Formatted); err != nil {
			outcome.Error = fmt.Errorf("verify %s: %w", path, err)
			return outcome
		}
	}

	if opts.Write && outcome.Changed {
		written, err := fsutil.Replace(ctx, state, []byte(outcome.Formatted), content)
		if err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Written = written
	}

	logger.Debug("formatted file", logging.FieldChanged, outcome.Changed, logging.FieldWarnings, len(outcome.Warnings))
	return outcome
}
