package constants

// HTTP Methods
const (
	HTTPMethodGET     = "GET"
	HTTPMethodPOST    = "POST"
	HTTPMethodOPTIONS = "OPTIONS"
)

// Content Types
const (
	ContentTypeJSON = "application/json"
)

// HTTP Headers
const (
	HeaderContentType = "Content-Type"

	HeaderCORSAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderCORSAllowHeaders = "Access-Control-Allow-Headers"
	HeaderCORSAllowMethods = "Access-Control-Allow-Methods"
)

// CORS header values sent on every response. The allow-headers list matches
// what API Gateway forwards for signed browser requests.
const (
	CORSAllowOrigin  = "*"
	CORSAllowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	CORSAllowMethods = "GET,POST,OPTIONS"
)
