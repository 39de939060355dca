package fmm

// LazyEvaluator composes planning and execution (§4.6): construction runs
// the full descent and dependency closure, Run replays the resulting phase
// lists once.
type LazyEvaluator struct {
	plan     *LazyPlan
	progress *ProgressCaster
}

// NewLazyEvaluator plans an evaluation of ctx under kind. progress may be
// nil if the caller does not want phase-completion events.
func NewLazyEvaluator(ctx *Context, kind EvaluatorKind, progress *ProgressCaster) (*LazyEvaluator, error) {
	plan, err := Plan(ctx, kind)
	if err != nil {
		return nil, err
	}
	return &LazyEvaluator{plan: plan, progress: progress}, nil
}

// Plan exposes the underlying plan, e.g. for PlanFingerprint or diagnostics
// dumps.
func (e *LazyEvaluator) Plan() *LazyPlan { return e.plan }

// Run executes the planned phases in the fixed §4.6 order.
func (e *LazyEvaluator) Run() error { return e.plan.Execute(e.progress) }
