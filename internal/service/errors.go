package service

import "errors"

// Integrity errors: a required identifier is missing at the point of
// mutation. The services refuse to call the store and return one of these so
// the caller can refetch and retry with fresh data; guessing an identifier is
// never an option.
var (
	// ErrMissingLinkID is returned when an unlink is attempted without the
	// link's own id. Unlinking by an endpoint id would delete the wrong
	// relationship, or none.
	ErrMissingLinkID = errors.New("link id is required to remove a link")
	// ErrMissingDocumentID is returned when a document link is attempted
	// without a document id.
	ErrMissingDocumentID = errors.New("document id is required to create a link")
	// ErrMissingProjectID is returned when a project link is attempted
	// without a project id.
	ErrMissingProjectID = errors.New("project id is required to create a link")
	// ErrMissingDispatchOrderID is returned when an operation scoped to a
	// dispatch order is attempted without one.
	ErrMissingDispatchOrderID = errors.New("dispatch order id is required")
	// ErrWorkEventMoved is returned when an update tries to move a work
	// event to a different dispatch order.
	ErrWorkEventMoved = errors.New("a work event cannot move to another dispatch order")
)
