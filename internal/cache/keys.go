package cache

import (
	"fmt"
	"strings"
)

const KeyLocations = "locations"

// KeyRoutes identifies one route search. Occasion is normalised so that
// "Leisure" and "leisure" share an entry.
func KeyRoutes(originID, destinationID, date, occasion string, firstTrip bool) string {
	return fmt.Sprintf("routes:%s:%s:%s:%s:%t",
		originID, destinationID, date, strings.ToLower(strings.TrimSpace(occasion)), firstTrip)
}
