package holdem

import "fmt"

// ParseError is an error for a malformed or duplicate token in a textual
// hand record
type ParseError struct {
	Token    string
	Position int
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %q (position %d): %s", e.Token, e.Position, e.Reason)
}

func newParseError(token string, position int, format string, a ...interface{}) *ParseError {
	return &ParseError{
		Token:    token,
		Position: position,
		Reason:   fmt.Sprintf(format, a...),
	}
}

// InvalidAction is an error for an action that violates the betting rules.
// The engine never partially applies an illegal action.
type InvalidAction struct {
	Action Action
	Reason string
}

func (e *InvalidAction) Error() string {
	return fmt.Sprintf("invalid action %q (position %d): %s", e.Action.Token, e.Action.Position, e.Reason)
}

func newInvalidAction(act Action, format string, a ...interface{}) *InvalidAction {
	return &InvalidAction{
		Action: act,
		Reason: fmt.Sprintf(format, a...),
	}
}

// EvaluationError is an error when the seats remaining at the end of a
// replay cannot be ranked
type EvaluationError struct {
	Reason string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error: %s", e.Reason)
}
