package constant

import (
	"time"
)

const (
	TokenRecordID = "akia_auth"

	// TokenExpirySkew is subtracted from the provider's expires_in before the expiry is stored.
	TokenExpirySkew = 60 * time.Second
)

const (
	ServiceAkia     = "akia"
	ServiceAgilysys = "agilysys"
	ServiceHubSpot  = "hubspot"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
	OutcomeBusy    = "busy"
)

const (
	CacheKeyAgilysysBookingAuth = "agilysys:auth:booking"
	CacheKeyAgilysysSpaAuth     = "agilysys:auth:spa"
	CacheKeySyncLockPrefix      = "sync:lock:"
)

const (
	QueryParamCode  = "code"
	QueryParamState = "state"
	QueryParamError = "error"
)

const (
	DateLayout        = "2006-01-02"
	DateTimeLayout    = "2006-01-02T15:04:05"
	ArchiveDatePrefix = "2006/01/02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
	OtelCacheScopeName      = "cache"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderSessionID          = "SessionId"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnhealthy            = "SERVICE UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
