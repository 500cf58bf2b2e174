package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a pipeline failure. Only the kind and message
// cross the transport boundary; wrapped causes stay internal.
type ErrorKind string

const (
	MalformedRequest ErrorKind = "malformed_request"
	InvalidSegment   ErrorKind = "invalid_segment"
	SynthesisFailed  ErrorKind = "synthesis_failed"
	AssemblyFailed   ErrorKind = "assembly_failed"
	EncodingFailed   ErrorKind = "encoding_failed"
	ArtifactNotFound ErrorKind = "artifact_not_found"
)

type PipelineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string) *PipelineError {
	return &PipelineError{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the classification of err, or an empty kind when the
// error did not originate in the pipeline.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
