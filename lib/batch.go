package lib

import "fmt"

type Result struct {
	Input string
	Value int64
}

// BatchError reports which input of a batch failed. Err is the Fault from
// Parse or Eval.
type BatchError struct {
	Index int
	Input string
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("Expression %d (%q): %s", e.Index+1, e.Input, e.Err.Error())
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// EvalAll evaluates each input in order and calls emit with every result.
// It stops at the first input that fails, so emit has been called exactly
// once for each input before the failing one.
func EvalAll(inputs []string, emit func(Result)) error {
	for i, input := range inputs {
		value, err := EvalString(input)
		if err != nil {
			return &BatchError{Index: i, Input: input, Err: err}
		}
		emit(Result{Input: input, Value: value})
	}
	return nil
}

// EvalString parses and evaluates a single expression.
func EvalString(input string) (int64, error) {
	expr, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Eval(expr)
}
