package utils

import "time"

// Schedule and booking timestamps travel as RFC3339 in UTC so they round-trip
// losslessly between the API, the database and the client.

// NowUTC returns current time in UTC, truncated to whole seconds to match
// DATETIME column precision.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
