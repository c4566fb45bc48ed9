// Package telemetry records client health measurements to InfluxDB.
//
// Recorded measurements:
//   - rest_ping: REST round-trip latency from RestPing probes
//   - gateway_ping: heartbeat acknowledgement latency
//   - cache_size: per-kind entity counts
//
// Writes are batched and flushed asynchronously by the underlying
// client; Close flushes any buffered points.
//
// Thread Safety:
// Recorder methods are safe for concurrent use.
package telemetry
