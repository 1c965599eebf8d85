package stemmer

import "errors"

var (
	// ErrInvalidArgument reports a caller precondition violation, such as a
	// length larger than the buffer it describes.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfiguration reports a stopword source that could not be read or
	// parsed.
	ErrConfiguration = errors.New("configuration error")
)
