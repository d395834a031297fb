package response

const (
	// ContentTypeProblem is the media type of error bodies.
	ContentTypeProblem = "application/problem+json"

	// TimestampFormat is the layout the bionyx API uses for timestamps:
	// seven fractional digits and a numeric offset.
	TimestampFormat = "2006-01-02T15:04:05.0000000-07:00"

	problemTypeBlank = "about:blank"
)
