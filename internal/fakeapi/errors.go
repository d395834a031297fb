package fakeapi

import "errors"

var (
	ErrSystemNotFound  = errors.New("system not found")
	ErrWebhookNotFound = errors.New("function webhook not found")
	ErrQuotaExceeded   = errors.New("no free function webhook slots left on this system")
	ErrDeletePending   = errors.New("function webhook is waiting for deletion")
	ErrNothingPending  = errors.New("function webhook has no pending modification")
	ErrRateLimited     = errors.New("rate limit exceeded")
)
