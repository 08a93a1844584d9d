package copier

// Result represents the outcome of one invocation.
type Result interface {
	isResult()
}

// NoTabsResult indicates nothing was open; a warning was shown.
type NoTabsResult struct{}

func (NoTabsResult) isResult() {}

// DismissedResult indicates the picker was closed without confirming.
type DismissedResult struct{}

func (DismissedResult) isResult() {}

// NothingSelectedResult indicates the user confirmed an empty selection.
type NothingSelectedResult struct{}

func (NothingSelectedResult) isResult() {}

// CopiedResult indicates Text was written to the clipboard.
type CopiedResult struct {
	Count int
	Text  string
}

func (CopiedResult) isResult() {}

// FailedResult indicates an unexpected failure. It has already been logged
// and reported to the user.
type FailedResult struct {
	Err error
}

func (FailedResult) isResult() {}
