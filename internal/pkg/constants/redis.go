package constants

// Redis key formats
const (
	// Driver presence
	KeyDriverPresence   = "driver:presence:%s" // Format: driver:presence:{driver_id}
	KeyDriverGeo        = "driver:geo"         // Geo set of online driver locations
	KeyAvailableDrivers = "drivers:available"  // Set of online driver IDs
	KeyDriverLocation   = "driver:location:%s" // Format: driver:location:{driver_id}

	// Offer/matching
	KeyIgnoredTrips = "driver:ignored:%s" // Format: driver:ignored:{driver_id}, hash of trip_id -> entry

	// Trip lifecycle
	KeyActiveTripDriver   = "driver:trip:%s"   // Format: driver:trip:{driver_id}
	KeyActiveTripCustomer = "customer:trip:%s" // Format: customer:trip:{customer_id}

	// Balance gate
	KeySessionBalance = "balance:session:%s" // Format: balance:session:{user_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldTimestamp = "ts"
	FieldPrice     = "price"
	FieldIgnoredAt = "ignored_at"
	FieldAmount    = "amount"
	FieldReliable  = "reliable"
)
