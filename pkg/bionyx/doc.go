// Package bionyx is a client for the ekey bionyx third-party REST API.
//
// The API lets an account list the access-control systems it can see and
// manage the function webhooks registered on each of them.
//
// # Authentication
//
// Every request carries a bearer token obtained from a TokenProvider. The
// provider is asked on each request, so refreshing is its business:
//
//	cfg := bionyx.OAuth2Config(clientID, clientSecret, redirectURL)
//	src := oauth2.ReuseTokenSource(tok, cfg.TokenSource(ctx, tok))
//	auth, err := bionyx.NewAuth(http.DefaultClient, bionyx.DefaultBaseURL,
//	    bionyx.NewOAuth2TokenProvider(src))
//
// # Usage
//
//	api := bionyx.NewAPI(auth)
//	systems, err := api.GetSystems(ctx)
//	webhooks, err := systems[0].GetWebhooks(ctx)
//	wh, err := systems[0].AddWebhook(ctx, bionyx.WebhookData{...})
//
// # Modification state
//
// Deleting or updating a webhook has to be confirmed by the account owner in
// the bionyx app. Webhook.Delete and Webhook.Update therefore only record the
// local markers DeleteRequested and UpdateRequested; call Webhook.GetUpdate to
// learn what the service actually holds.
//
// # Errors
//
// Any non-2xx status is returned as *ResponseError. Nothing is retried.
package bionyx
