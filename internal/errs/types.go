package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ValidationError means the request was rejected before any processing.
type ValidationError struct {
	ErrorMessage
}

// RenderError wraps a chart rendering or encoding failure.
type RenderError struct {
	ErrorMessage
	Err error
}

func (e *RenderError) Unwrap() error { return e.Err }

// PipelineError is an unexpected fault inside aggregation, categorization
// or scoring, including a recovered panic.
type PipelineError struct {
	ErrorMessage
	Stage string
}

// CatalogError means the endpoint catalog could not be loaded.
type CatalogError struct {
	ErrorMessage
	Err error
}

func (e *CatalogError) Unwrap() error { return e.Err }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewRenderError(err error) *RenderError {
	return &RenderError{
		ErrorMessage: ErrorMessage{Message: err.Error()},
		Err:          err,
	}
}

func NewPipelineError(stage string, recovered any) *PipelineError {
	return &PipelineError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprint(recovered)},
		Stage:        stage,
	}
}

func NewCatalogError(message string, err error) *CatalogError {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	return &CatalogError{
		ErrorMessage: ErrorMessage{Message: message},
		Err:          err,
	}
}
