package bionyx

// FunctionQuotas is the webhook allowance of a system.
type FunctionQuotas struct {
	Free int `json:"free"`
	Used int `json:"used"`
}

// SystemResponse is the payload of one entry returned by GET systems.
type SystemResponse struct {
	SystemName            string         `json:"systemName"`
	SystemID              string         `json:"systemId"`
	OwnSystem             bool           `json:"ownSystem"`
	FunctionWebhookQuotas FunctionQuotas `json:"functionWebhookQuotas"`
}

// WebhookResponse is the payload describing one function webhook.
// ModificationState is nil when no change is pending.
type WebhookResponse struct {
	FunctionWebhookID string  `json:"functionWebhookId"`
	IntegrationName   string  `json:"integrationName"`
	LocationName      string  `json:"locationName"`
	FunctionName      string  `json:"functionName"`
	ExpiresAt         string  `json:"expiresAt"`
	ModificationState *string `json:"modificationState"`
}

// WebhookData is the body of POST and PUT requests on function webhooks.
type WebhookData struct {
	FunctionWebhookID string            `json:"functionWebhookId,omitempty"`
	IntegrationName   string            `json:"integrationName"`
	LocationName      string            `json:"locationName,omitempty"`
	FunctionName      string            `json:"functionName,omitempty"`
	ExpiresAt         string            `json:"expiresAt,omitempty"`
	ModificationState string            `json:"modificationState,omitempty"`
	Definition        WebhookDefinition `json:"definition"`
}

// WebhookDefinition describes the outbound call the service performs.
type WebhookDefinition struct {
	Method                HTTPMethod                      `json:"method"`
	URL                   string                          `json:"url"`
	Body                  *WebhookDefinitionBody          `json:"body,omitempty"`
	SecurityLevel         SecurityLevel                   `json:"securityLevel"`
	PinnedCertificate     string                          `json:"pinnedCertificate,omitempty"`
	Timeout               *int                            `json:"timeout,omitempty"`
	AdditionalHTTPHeaders map[string]any                  `json:"additionalHttpHeaders,omitempty"`
	Authentication        WebhookDefinitionAuthentication `json:"authentication"`
}

// WebhookDefinitionBody is the request body sent to the webhook target.
// Content is either a string or a JSON object.
type WebhookDefinitionBody struct {
	ContentType string `json:"contentType,omitempty"`
	Content     any    `json:"content"`
}

// WebhookDefinitionAuthentication configures how the service authenticates
// against the webhook target.
type WebhookDefinitionAuthentication struct {
	APIAuthenticationType AuthenticationType `json:"apiAuthenticationType"`
	ExpiresIn             *int               `json:"expiresIn,omitempty"`
	ClientID              string             `json:"clientId,omitempty"`
	AccessToken           string             `json:"accessToken,omitempty"`
	RefreshToken          string             `json:"refreshToken,omitempty"`
	TokenEndpoint         string             `json:"tokenEndpoint,omitempty"`
	Scope                 string             `json:"scope,omitempty"`
	AuthorizationEndpoint string             `json:"authorizationEndpoint,omitempty"`
}

// WebhookRename is the body of PATCH requests. Only the names can change this way.
type WebhookRename struct {
	LocationName string `json:"locationName,omitempty"`
	FunctionName string `json:"functionName,omitempty"`
}
