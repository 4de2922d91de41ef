package perplexity

const (
	// DefaultBaseURL is the default Perplexity API endpoint
	DefaultBaseURL = "https://api.perplexity.ai"

	// DefaultModel is the default model to use
	DefaultModel = "sonar"
)
