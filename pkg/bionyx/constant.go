package bionyx

const (
	// DefaultBaseURL is the production host of the third-party API.
	DefaultBaseURL = "https://api.bionyx.io/3rd-party/api"

	// DefaultUserAgent is sent when no WithUserAgent option is given.
	DefaultUserAgent = "ekey-bionyx-go"

	pathSystems          = "systems"
	pathFunctionWebhooks = "function-webhooks"

	// errorBodyLimit bounds how much of a failed response body is kept on ResponseError.
	errorBodyLimit = 4 << 10
)

// Local markers assigned by Webhook.Delete and Webhook.Update. They record that a
// mutation was requested by this client; the service only confirms it after the
// account owner approves it, so a later GetUpdate may report something else.
const (
	DeleteRequested = "DeleteRequested"
	UpdateRequested = "UpdateRequested"
)
