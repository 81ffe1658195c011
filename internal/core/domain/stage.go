package domain

// Stage is one named phase of the orchestration pipeline.
type Stage string

// Pipeline stages in execution order.
const (
	StageClean     Stage = "clean"
	StageFormat    Stage = "format"
	StageLint      Stage = "lint"
	StageConfigure Stage = "configure"
	StageBuild     Stage = "build"
	StageInstall   Stage = "install"
	StageRun       Stage = "run"
)

// Stages returns every stage in the fixed order the pipeline runs them.
func Stages() []Stage {
	return []Stage{StageClean, StageFormat, StageLint, StageConfigure, StageBuild, StageInstall, StageRun}
}

func (s Stage) String() string {
	return string(s)
}

// StageStatus is the tag of a StageOutcome.
type StageStatus uint8

const (
	// StatusSkipped means the stage was not requested or not applicable.
	StatusSkipped StageStatus = iota
	// StatusSucceeded means the stage did its work.
	StatusSucceeded
	// StatusFailed is a recoverable failure: it is reported but later stages still run.
	StatusFailed
	// StatusAborted is a fatal failure: no later stage runs.
	StatusAborted
)

func (s StageStatus) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusAborted:
		return "aborted"
	default:
		return "skipped"
	}
}

// StageOutcome is the tagged result of running one stage.
type StageOutcome struct {
	Status StageStatus
	Err    error
	// Terminal completes the pipeline right after this stage.
	Terminal bool
}

// Skipped returns the outcome of a stage that did not run.
func Skipped() StageOutcome {
	return StageOutcome{Status: StatusSkipped}
}

// Succeeded returns the outcome of a stage that did its work.
func Succeeded() StageOutcome {
	return StageOutcome{Status: StatusSucceeded}
}

// Failed returns a recoverable failure outcome.
func Failed(err error) StageOutcome {
	return StageOutcome{Status: StatusFailed, Err: err}
}

// Aborted returns a fatal failure outcome.
func Aborted(err error) StageOutcome {
	return StageOutcome{Status: StatusAborted, Err: err}
}

// Complete marks the outcome as ending the pipeline when terminal is true.
func (o StageOutcome) Complete(terminal bool) StageOutcome {
	o.Terminal = terminal
	return o
}

// StageError is the reason a stage failed.
// Reason is one of the domain sentinels, so callers can use errors.Is.
type StageError struct {
	Stage  Stage
	Reason error
	Detail string
	Err    error
}

// NewStageError creates a StageError with a human readable detail.
func NewStageError(stage Stage, reason error, detail string) *StageError {
	return &StageError{Stage: stage, Reason: reason, Detail: detail}
}

// WithCause attaches the underlying error.
func (e *StageError) WithCause(err error) *StageError {
	e.Err = err
	return e
}

func (e *StageError) Error() string {
	msg := string(e.Stage) + ": "
	if e.Detail != "" {
		msg += e.Detail
	} else if e.Reason != nil {
		msg += e.Reason.Error()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the reason sentinel and the underlying cause.
func (e *StageError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Reason != nil {
		errs = append(errs, e.Reason)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
