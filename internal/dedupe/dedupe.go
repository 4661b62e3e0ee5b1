package dedupe

// Package dedupe provides the shared singleflight group used to deduplicate
// concurrent round-generation requests. Using a centralized
// singleflight.Group ensures that only one generation job runs for a given
// theme while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// RoundGroup deduplicates round generation requests keyed by the
// canonicalized theme (see keys.ThemeKey).
var RoundGroup singleflight.Group
