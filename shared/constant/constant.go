package constant

import (
	"time"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID         = "id"
	RequestParamMenu       = "menu"
	RequestParamCollection = "collection"
	RequestParamDirection  = "direction"
	RequestParamPageNumber = "page"
	RequestParamFrom       = "from"
	RequestParamTo         = "to"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "createdAt"
	DefaultValueSortDir = "DESC"
)

const (
	FieldID         = "id"
	FieldCreatedAt  = "createdAt"
	FieldModifiedAt = "modifiedAt"
)

const (
	DateFormat    = time.RFC3339
	DayFormat     = "2006-01-02"
	HoursInOneDay = 24
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelDocStoreScopeName   = "docstore"
	OtelHandlerScopeName    = "handler"
	OtelManagerScopeName    = "manager"
	OtelExternalScopeName   = "external"

	OtelCollectionAttributeKey = "collection"
	OtelKeyAttributeKey        = "key"
	OtelS3ScopeName            = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderContentLength      = "Content-Length"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
