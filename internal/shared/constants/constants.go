// Package constants holds the marketplace's fixed limits and wire names.
package constants

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
)

// Keys the auth and request-id middleware store on the gin context.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserEmail = "user_email"
	ContextKeyRequestID = "request_id"
)

const SessionCookieName = "token"

// Every new account starts with DefaultFreeListings. Admins are topped up
// to AdminPaidListings so they never hit the paywall.
const (
	DefaultFreeListings = 3
	AdminPaidListings   = 999
)

const (
	MinTitleLength       = 5
	MinDescriptionLength = 20
	MaxImagesPerListing  = 5
)

const DefaultRejectionReason = "Thông tin chưa đầy đủ"

const (
	MaxMessageLength    = 2000
	MessageHistoryLimit = 100
)

const (
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Authentication required"
	ErrMsgValidationFailed    = "Validation failed"
)
