package constants

// Request headers understood by the gateway.
const (
	HeaderTimestamp    = "x-timestamp"
	HeaderAPIKey       = "x-api-key"
	HeaderSignature    = "x-signature"
	HeaderAccessToken  = "x-access-token"
	HeaderRefreshToken = "x-refresh-token"
)
