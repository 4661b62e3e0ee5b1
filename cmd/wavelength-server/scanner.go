package main

import (
	"time"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/logging"
	"github.com/shenminzhang/wavelengthwalfie/internal/storage"
)

// startExpiryScanner periodically purges rounds whose TTL has passed so
// abandoned rounds do not accumulate in the database. Expired rounds are
// also rejected at reveal time; the scanner only reclaims storage.
func startExpiryScanner(repo storage.Repository, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			n, err := repo.DeleteExpiredRounds(time.Now().Add(-ttl))
			if err != nil {
				logging.Error("round expiry scanner failed", err, nil)
				continue
			}
			if n > 0 {
				logging.Info("expired rounds purged", logging.Fields{constants.LogFieldCount: n})
			}
		}
	}()
}
