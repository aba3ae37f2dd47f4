package constants

// NATS subjects. Per-trip and per-driver channels carry the id as the last
// token so clients can subscribe to exactly one trip or driver.
const (
	// Trip lifecycle
	SubjectTripStatus       = "trip.status.%s"   // Format: trip.status.{trip_id}
	SubjectTripStatusAll    = "trip.status.>"    // Wildcard for operators
	SubjectTripRequested    = "trip.requested"   // New biddable trip broadcast
	SubjectTripRepriced     = "trip.repriced"    // Price change broadcast

	// Offer/matching
	SubjectOfferAccepted    = "match.accepted.%s" // Format: match.accepted.{driver_id}
	SubjectOfferAcceptedAll = "match.accepted.*"  // Wildcard for the dispatch bridge
	SubjectOfferCreated     = "match.offer"       // Offer submitted by a driver

	// Location tracking
	SubjectDriverLocation    = "driver.location.%s" // Format: driver.location.{driver_id}
	SubjectDriverLocationAll = "driver.location.*"  // Wildcard for the dispatch bridge

	// Safety escalation
	SubjectSOSCreated = "sos.created"
)
