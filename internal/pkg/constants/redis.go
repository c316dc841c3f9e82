package constants

// Redis keys
const (
	// KeyVehicleLocations is the geo set holding vehicle positions
	KeyVehicleLocations = "vehicles:locations"

	// KeyVehicleGeohashPrefix prefixes per-cell vehicle membership sets
	KeyVehicleGeohashPrefix = "vehicles:geohash:"

	// KeyVehicleCellPrefix prefixes the key holding a vehicle's current cell
	KeyVehicleCellPrefix = "vehicles:cell:"
)
