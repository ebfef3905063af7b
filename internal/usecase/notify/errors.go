package notify

import "errors"

var (
	// ErrChannelDisabled is returned by Send on a channel without configuration.
	ErrChannelDisabled = errors.New("channel is disabled")

	// ErrInvalidArticle is returned for a nil article or one without a title.
	ErrInvalidArticle = errors.New("invalid article data")
)
