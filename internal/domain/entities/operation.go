package entities

import "fmt"

// OperationResult is the outcome of a synchronizer operation. Partial is set
// only when a move copied the repository but could not delete the source.
type OperationResult struct {
	Success bool
	Partial bool
	Message string
	// Step names the step that failed, empty on success.
	Step string
	// Err is the originating failure, nil on success.
	Err error
}

// Succeeded builds a successful result.
func Succeeded(format string, args ...any) OperationResult {
	return OperationResult{Success: true, Message: fmt.Sprintf(format, args...)}
}

// Failed builds a failed result originating at the given step.
func Failed(step string, err error) OperationResult {
	message := err.Error()
	if step != "" {
		message = fmt.Sprintf("%s failed: %v", step, err)
	}
	return OperationResult{Message: message, Step: step, Err: err}
}

// PartiallyFailed builds the result of a move whose copy succeeded but whose
// delete failed.
func PartiallyFailed(step string, err error, note string) OperationResult {
	return OperationResult{
		Partial: true,
		Message: fmt.Sprintf("%s failed: %v (%s)", step, err, note),
		Step:    step,
		Err:     err,
	}
}
