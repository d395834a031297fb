package fakeapi

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"ekey-bionyx/pkg/bionyx"
)

func validateWebhookData(d bionyx.WebhookData) error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.IntegrationName, validation.Length(0, 50)),
		validation.Field(&d.LocationName, validation.Length(0, 128)),
		validation.Field(&d.FunctionName, validation.Length(0, 50)),
		validation.Field(&d.Definition, validation.By(func(any) error {
			return validateDefinition(d.Definition)
		})),
	)
}

func validateDefinition(def bionyx.WebhookDefinition) error {
	return validation.ValidateStruct(&def,
		validation.Field(&def.Method, validation.Required, knownValue(def.Method.IsValid)),
		validation.Field(&def.URL, validation.Required, is.URL),
		validation.Field(&def.SecurityLevel, validation.Required, knownValue(def.SecurityLevel.IsValid)),
		validation.Field(&def.PinnedCertificate,
			validation.When(def.SecurityLevel == bionyx.SecurityTLSPinnedCertificate, validation.Required)),
		validation.Field(&def.Timeout, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&def.Authentication, validation.By(func(any) error {
			return validateAuthentication(def.Authentication)
		})),
	)
}

func validateAuthentication(a bionyx.WebhookDefinitionAuthentication) error {
	oauth := a.APIAuthenticationType != bionyx.AuthNone
	refresh := a.APIAuthenticationType == bionyx.AuthOAuth2IssuedRefreshToken
	return validation.ValidateStruct(&a,
		validation.Field(&a.APIAuthenticationType, validation.Required, knownValue(a.APIAuthenticationType.IsValid)),
		validation.Field(&a.AccessToken, validation.When(a.APIAuthenticationType == bionyx.AuthOAuth2IssuedAccessToken, validation.Required)),
		validation.Field(&a.RefreshToken, validation.When(refresh, validation.Required)),
		validation.Field(&a.TokenEndpoint, validation.When(refresh, validation.Required), validation.When(oauth, is.URL)),
		validation.Field(&a.ClientID, validation.When(refresh, validation.Required)),
	)
}

var errUnknownValue = validation.NewError("validation_unknown_value", "must be a known value")

// knownValue rejects enum values outside the defined set.
func knownValue(valid func() bool) validation.Rule {
	return validation.By(func(any) error {
		if !valid() {
			return errUnknownValue
		}
		return nil
	})
}

var errEmptyRename = errors.New("locationName or functionName is required")

func validateRename(r bionyx.WebhookRename) error {
	if r.LocationName == "" && r.FunctionName == "" {
		return errEmptyRename
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.LocationName, validation.Length(0, 128)),
		validation.Field(&r.FunctionName, validation.Length(0, 50)),
	)
}
