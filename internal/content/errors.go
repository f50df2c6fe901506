package content

import "fmt"

// NotFoundError means no backing file exists for the requested id.
type NotFoundError struct {
	ID  string
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("post %q not found: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("post %q not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// MalformedContentError reports an unterminated or unparseable frontmatter header.
type MalformedContentError struct {
	ID     string
	Reason string
	Err    error
}

func (e *MalformedContentError) Error() string {
	msg := "malformed content"
	if e.ID != "" {
		msg += fmt.Sprintf(" %q", e.ID)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedContentError) Unwrap() error { return e.Err }

// RenderError wraps a markdown conversion failure.
type RenderError struct {
	ID  string
	Err error
}

func (e *RenderError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("render %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("render: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
