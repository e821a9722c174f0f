package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"
)

// Step names reported in results when an operation aborts.
const (
	StepPreparation       = "preparation"
	StepConfirmation      = "confirmation"
	StepEnsureDestination = "ensure-destination"
	StepClone             = "clone"
	StepPushAll           = "push-all"
	StepPushTags          = "push-tags"
	StepDelete            = "delete"
)

// step is one named unit of a synchronization pipeline.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// stepRunner executes steps in order and stops at the first failure. Cleanup
// hooks registered while running are always executed, last registered first.
type stepRunner struct {
	cleanups []func()
}

// onCleanup registers fn to run once the pipeline is over, whatever its outcome.
func (r *stepRunner) onCleanup(fn func()) {
	r.cleanups = append(r.cleanups, fn)
}

// run returns the name of the failed step and its error, or two zero values.
func (r *stepRunner) run(ctx context.Context, steps []step) (string, error) {
	defer r.cleanup()

	for _, s := range steps {
		logger.Debugf("Running step %q", s.name)
		if err := s.run(ctx); err != nil {
			logger.Debugf("Step %q failed: %v", s.name, err)
			return s.name, err
		}
	}
	return "", nil
}

func (r *stepRunner) cleanup() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
	r.cleanups = nil
}
