package slack

// Export internal functions and types for testing
var (
	// WithAPIURL is exported for testing against a local server
	WithAPIURL = withAPIURL

	// TruncateToMaxBytes is exported for testing UTF-8 truncation
	TruncateToMaxBytes = truncateToMaxBytes

	BuildRegistrationBlocks = buildRegistrationBlocks
)
