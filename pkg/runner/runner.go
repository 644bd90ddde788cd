package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gofixit/pkg/fixit"
	"github.com/yaklabco/gofixit/pkg/hintfile"
)

// Runner executes one hints document against many inputs. Every input
// gets an independent run: its own file set, rewriter, applier and
// failure counter. Only the immutable parsed document is shared.
type Runner struct {
	doc *hintfile.Document
}

// New creates a Runner over a parsed hints document.
func New(doc *hintfile.Document) *Runner {
	return &Runner{doc: doc}
}

// Run expands opts.Inputs and processes them concurrently. The result
// lists outcomes in deterministic input order regardless of worker
// scheduling.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := ExpandInputs(ctx, opts, r.doc)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	// With one input the document may lean on the implicit file
	// default; with more it must say which diagnostic fixes what.
	if len(files) > 1 && r.doc != nil {
		if err := r.doc.RequireExplicitFiles(); err != nil {
			return nil, err
		}
	}

	pipeline := opts.Pipeline
	if pipeline.Loader == nil {
		pipeline.Loader = hintfile.Loader(r.doc)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, pipeline)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; key outcomes by path and rebuild
	// in input order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, pipeline fixit.PipelineOptions) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}
		res, err := fixit.ProcessFile(ctx, path, pipeline)
		if err != nil {
			outcome.Err = err
		} else {
			outcome.Result = res
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
