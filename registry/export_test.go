package registry

// NewAt exposes the timestamp-injected constructor so external tests can
// build reproducible records.
var NewAt = newAt
