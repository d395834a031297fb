package bionyx

import (
	"encoding/json"
	"fmt"
)

// HTTPMethod is the verb the service uses when it calls the webhook target.
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "Get"
	MethodPost   HTTPMethod = "Post"
	MethodPut    HTTPMethod = "Put"
	MethodDelete HTTPMethod = "Delete"
	MethodPatch  HTTPMethod = "Patch"
	MethodHead   HTTPMethod = "Head"
)

var httpMethods = []HTTPMethod{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead}

// ParseHTTPMethod converts a wire literal such as "Post" into an HTTPMethod.
func ParseHTTPMethod(s string) (HTTPMethod, error) {
	for _, m := range httpMethods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("bionyx: unknown webhook method %q", s)
}

// IsValid reports whether m is one of the defined methods.
func (m HTTPMethod) IsValid() bool {
	_, err := ParseHTTPMethod(string(m))
	return err == nil
}

func (m *HTTPMethod) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, m, ParseHTTPMethod)
}

// SecurityLevel is the TLS policy applied to the webhook target.
type SecurityLevel string

const (
	SecurityAllowHTTP            SecurityLevel = "AllowHttp"
	SecurityTLSWithCACheck       SecurityLevel = "TlsWithCACheck"
	SecurityTLSAllowSelfSigned   SecurityLevel = "TlsAllowSelfSigned"
	SecurityTLSPinnedCertificate SecurityLevel = "TlsPinnedCertificate"
)

var securityLevels = []SecurityLevel{
	SecurityAllowHTTP,
	SecurityTLSWithCACheck,
	SecurityTLSAllowSelfSigned,
	SecurityTLSPinnedCertificate,
}

// ParseSecurityLevel converts a wire literal into a SecurityLevel.
func ParseSecurityLevel(s string) (SecurityLevel, error) {
	for _, l := range securityLevels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("bionyx: unknown security level %q", s)
}

// IsValid reports whether l is one of the defined levels.
func (l SecurityLevel) IsValid() bool {
	_, err := ParseSecurityLevel(string(l))
	return err == nil
}

func (l *SecurityLevel) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, l, ParseSecurityLevel)
}

// AuthenticationType selects how the service authenticates against the webhook target.
type AuthenticationType string

const (
	AuthNone                     AuthenticationType = "None"
	AuthOAuth2IssuedAccessToken  AuthenticationType = "OAuth2IssuedAccessToken"
	AuthOAuth2IssuedRefreshToken AuthenticationType = "OAuth2IssuedRefreshToken"
)

var authenticationTypes = []AuthenticationType{AuthNone, AuthOAuth2IssuedAccessToken, AuthOAuth2IssuedRefreshToken}

// ParseAuthenticationType converts a wire literal into an AuthenticationType.
func ParseAuthenticationType(s string) (AuthenticationType, error) {
	for _, t := range authenticationTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("bionyx: unknown authentication type %q", s)
}

// IsValid reports whether t is one of the defined authentication types.
func (t AuthenticationType) IsValid() bool {
	_, err := ParseAuthenticationType(string(t))
	return err == nil
}

func (t *AuthenticationType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, ParseAuthenticationType)
}

func unmarshalEnum[T ~string](data []byte, dst *T, parse func(string) (T, error)) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := parse(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
