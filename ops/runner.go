package ops

import (
	"github.com/keep94/tasks"
	"time"
)

// Runner runs at most one ScaleAction in the background. Starting a new
// action ends the one already running.
// Runner is safe to use with multiple goroutines.
type Runner struct {
	ctxt   Context
	runner *tasks.SingleExecutor
}

// NewRunner returns a Runner that sets lights through ctxt.
func NewRunner(ctxt Context) *Runner {
	return &Runner{ctxt: ctxt, runner: tasks.NewSingleExecutor()}
}

// IsRunning returns true if an action is running.
func (r *Runner) IsRunning() bool {
	_, e := r.runner.Current()
	return e != nil
}

// Start runs action every interval, replacing any running action.
func (r *Runner) Start(action *ScaleAction, interval time.Duration) {
	r.runner.Start(action.Task(r.ctxt, interval))
}

// Stop stops the running action and waits for it to finish.
func (r *Runner) Stop() {
	_, e := r.runner.Current()
	if e != nil {
		e.End()
		<-e.Done()
	}
}
