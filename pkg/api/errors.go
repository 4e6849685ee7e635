// Client-facing error messages for the shelfd API.

package api

// Error messages returned to clients. Full failure detail is logged
// server-side; the client always receives a two-key JSON body of the form
// {"error": <message>}.
const (
	// ErrMsgUserNotFound is returned when no user matches the requested id.
	ErrMsgUserNotFound = "User not found"

	// ErrMsgPostNotFound is returned when no post matches the requested id.
	ErrMsgPostNotFound = "Post not found"

	// ErrMsgBookNotFound is returned when no book matches the requested id.
	ErrMsgBookNotFound = "Book not found"

	// ErrMsgUsernameTaken is returned when creating a user with a username
	// that already exists.
	ErrMsgUsernameTaken = "Username already taken"

	// ErrMsgInsufficientData is returned when a create request is missing
	// required fields.
	ErrMsgInsufficientData = "Insufficient Data"

	// ErrMsgNotFound is returned for requests that match no route.
	ErrMsgNotFound = "Resource not found"

	// ErrMsgInternal is returned for unexpected handler failures.
	ErrMsgInternal = "Something went wrong!"
)
