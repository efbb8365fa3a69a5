package window

import "context"

// Prompt describes a single-line input dialog.
type Prompt struct {
	Heading     string
	Placeholder string
	Confirm     string
	Cancel      string
}

// Response is the outcome of a prompt. OK is false when the user cancelled.
type Response struct {
	Text string
	OK   bool
}

// Future delivers exactly one Response.
type Future <-chan Response

// Prompter asks the user for a line of text without blocking the caller's
// event loop; the answer arrives on the returned Future.
type Prompter interface {
	RequestInput(ctx context.Context, p Prompt) Future
}

// Resolved returns a Future that already holds r.
func Resolved(r Response) Future {
	ch := make(chan Response, 1)
	ch <- r
	return ch
}

// Await blocks until f resolves or ctx ends. A closed future or a cancelled
// context count as a cancelled prompt.
func Await(ctx context.Context, f Future) Response {
	select {
	case r, ok := <-f:
		if !ok {
			return Response{}
		}
		return r
	case <-ctx.Done():
		return Response{}
	}
}
