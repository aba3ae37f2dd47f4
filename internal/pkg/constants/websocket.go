package constants

// WebSocket event names exchanged with mobile clients
const (
	EventTripStatus     = "trip_status"
	EventDriverLocation = "driver_location"
	EventOfferPrompt    = "offer_prompt"
	EventOfferRetracted = "offer_retracted"
	EventTripAccepted   = "trip_accepted"
	EventNavigate       = "navigate_active_trip"
	EventNotice         = "notice"
	EventError          = "error"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternal      = "internal_error"
)
