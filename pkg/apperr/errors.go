package apperr

import "errors"

var (
	ErrEmptyInput        = errors.New("empty input")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrRankOutOfRange    = errors.New("rank out of range")
	ErrInvalidRecallBase = errors.New("invalid recall base")
	ErrInvalidRelevance  = errors.New("invalid relevance value")
	ErrInvalidGain       = errors.New("invalid gain value")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrDuplicateQuery    = errors.New("duplicate query")
)

// ValidationError reports which operation rejected its input. Err is one of
// the sentinel errors above.
type ValidationError struct {
	Op      string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(op, msg string, kind error) *ValidationError {
	return &ValidationError{Op: op, Message: msg, Err: kind}
}
