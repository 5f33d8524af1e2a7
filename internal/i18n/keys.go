// Package i18n provides internationalization support for the storefront service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"

	// ErrKeyComboNotFound indicates an unknown combo id.
	ErrKeyComboNotFound = "error.combo_not_found"
	// ErrKeySessionNotFound indicates an unknown or expired selection session.
	ErrKeySessionNotFound = "error.session_not_found"
	// ErrKeyCartNotFound indicates an unknown or expired cart.
	ErrKeyCartNotFound = "error.cart_not_found"
	// ErrKeySelectionFull indicates the combo's entree slots are already filled.
	ErrKeySelectionFull = "error.selection_full"
	// ErrKeyBaseChoiceNotAllowed indicates a base choice on a combo without one.
	ErrKeyBaseChoiceNotAllowed = "error.base_choice_not_allowed"
	// ErrKeyItemUnknown indicates an item that is not in the combo's pool.
	ErrKeyItemUnknown = "error.item_unknown"
	// ErrKeyItemInOtherPool indicates an item already chosen in the other pool.
	ErrKeyItemInOtherPool = "error.item_in_other_pool"
	// ErrKeyIncompleteSelection indicates finalizing an unfinished selection.
	ErrKeyIncompleteSelection = "error.incomplete_selection"
)

// Success message translation keys.
const (
	// SuccessKeyQuoteCalculated indicates a successful quote.
	SuccessKeyQuoteCalculated = "success.quote_calculated"
)
