package constants

// Content Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
	ContentTypeYAML = "application/yaml"
)

// HTTP Headers
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderCacheControl  = "Cache-Control"
	HeaderAllowOrigin   = "Access-Control-Allow-Origin"
	HeaderAllowMethods  = "Access-Control-Allow-Methods"
	HeaderAllowHeaders  = "Access-Control-Allow-Headers"
	HeaderAdminPassword = "x-admin-password"
	HeaderRequestID     = "X-Request-ID"
)

// Header values
const (
	AllowOriginAny      = "*"
	PendingAllowMethods = "GET, OPTIONS"
	PendingAllowHeaders = "Content-Type, x-admin-password"
	FeedCacheControl    = "s-maxage=300, stale-while-revalidate=600"
	PendingCacheControl = "no-cache"
	GitHubAcceptV3      = "application/vnd.github.v3+json"
)

// Routes
const (
	RouteFeed    = "/api/data"
	RoutePending = "/api/pending"
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)

// Error messages returned to callers
const (
	ErrMethodNotAllowed    = "Method not allowed"
	ErrUnauthorized        = "Unauthorized"
	ErrServerMisconfigured = "Server misconfigured"
	ErrFetchSheet          = "Failed to fetch sheet"
	ErrReadPending         = "Failed to read pending.json"
)
