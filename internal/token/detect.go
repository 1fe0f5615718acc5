package token

import "strings"

// Kind classifies a token by its well-known value prefix.
type Kind string

const (
	// KindUser is a user access token (hf_ prefix).
	KindUser Kind = "user"

	// KindOrg is a legacy organization token (api_org_ prefix).
	KindOrg Kind = "org"

	// KindUnknown means the value has no recognized prefix. Tokens
	// issued before the hf_ scheme have no recognizable shape, so
	// this is advisory rather than an error.
	KindUnknown Kind = "unknown"
)

// DetectKind determines the token kind from its format.
func DetectKind(value string) Kind {
	switch {
	case strings.HasPrefix(value, "hf_"):
		return KindUser
	case strings.HasPrefix(value, "api_org_"):
		return KindOrg
	default:
		return KindUnknown
	}
}
