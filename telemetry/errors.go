package telemetry

import "errors"

// ErrMissingURL indicates no InfluxDB endpoint was configured.
var ErrMissingURL = errors.New("telemetry: url is required")
