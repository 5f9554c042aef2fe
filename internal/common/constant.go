package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound API requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation id so client-side
// logs can be matched against server-side ones.
const RequestIDHeaderName = "X-Request-Id"
