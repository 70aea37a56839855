package rangeapi

import "fmt"

// RemoteQueryError is returned when the range endpoint answers with a
// non-200 status or cannot be reached at all. Status is 0 for transport
// failures, in which case Err holds the cause.
type RemoteQueryError struct {
	Status int
	URL    string
	Err    error
}

func (e *RemoteQueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("error fetching %s: status %d, check the api and try again", e.URL, e.Status)
}

func (e *RemoteQueryError) Unwrap() error {
	return e.Err
}

// ParseError reports a response line that is not of the form SUFFIX:COUNT.
// Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed range line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("malformed range line %d %q", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
