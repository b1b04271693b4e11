package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/bucketsim/internal/config"
)

// Run names one configuration of an ensemble.
type Run struct {
	Name   string
	Config *config.Config
}

// PresetRuns resolves preset names into runs.
func PresetRuns(names []string) ([]Run, error) {
	runs := make([]Run, 0, len(names))
	for _, name := range names {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", name)
		}
		runs = append(runs, Run{Name: name, Config: cfg})
	}
	return runs, nil
}

// RunEnsemble runs every configuration in its own session and goroutine.
// Results keep the order of runs.
func RunEnsemble(ctx context.Context, runs []Run, opts RunOptions) ([]*Result, error) {
	results := make([]*Result, len(runs))
	errs := make([]error, len(runs))

	var wg sync.WaitGroup
	for i, run := range runs {
		wg.Add(1)
		go func(idx int, run Run) {
			defer wg.Done()

			exp := New(run.Config)
			if err := exp.Setup(); err != nil {
				errs[idx] = fmt.Errorf("%s: %w", run.Name, err)
				return
			}
			res, err := exp.Run(ctx, opts)
			if res != nil {
				res.Name = run.Name
			}
			results[idx] = res
			if err != nil {
				errs[idx] = fmt.Errorf("%s: %w", run.Name, err)
			}
		}(i, run)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
