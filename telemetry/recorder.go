package telemetry

import (
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/nerrad567/slipstream-core/entity"
)

// Default batching parameters.
const (
	defaultBatchSize     = 50
	defaultFlushInterval = 10 * time.Second
)

// Config contains InfluxDB connection settings.
type Config struct {
	// URL is the InfluxDB endpoint.
	URL string

	// Token authenticates writes.
	Token string

	// Org and Bucket select the write destination.
	Org    string
	Bucket string

	// BatchSize is the number of points buffered before a write.
	// 0 uses the default.
	BatchSize int

	// FlushInterval is the maximum buffering delay. 0 uses the default.
	FlushInterval time.Duration
}

// Recorder writes client health measurements to InfluxDB.
type Recorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
	shard    string
}

// NewRecorder creates a recorder writing to the configured bucket. The
// shard label is attached to every point so fleets can be compared.
func NewRecorder(cfg Config, shard string) (*Recorder, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	flushInterval := cfg.FlushInterval
	if flushInterval <= 0 {
		flushInterval = defaultFlushInterval
	}

	options := influxdb2.DefaultOptions().
		SetBatchSize(uint(batchSize)).
		SetFlushInterval(uint(flushInterval.Milliseconds()))

	client := influxdb2.NewClientWithOptions(cfg.URL, cfg.Token, options)
	return &Recorder{
		client:   client,
		writeAPI: client.WriteAPI(cfg.Org, cfg.Bucket),
		shard:    shard,
	}, nil
}

// RecordRestPing records one REST round-trip measurement.
func (r *Recorder) RecordRestPing(elapsed time.Duration) {
	p := influxdb2.NewPoint("rest_ping",
		map[string]string{"shard": r.shard},
		map[string]any{"latency_ms": float64(elapsed.Microseconds()) / 1000.0},
		time.Now(),
	)
	r.writeAPI.WritePoint(p)
}

// RecordGatewayPing records one heartbeat acknowledgement latency.
func (r *Recorder) RecordGatewayPing(elapsed time.Duration) {
	p := influxdb2.NewPoint("gateway_ping",
		map[string]string{"shard": r.shard},
		map[string]any{"latency_ms": float64(elapsed.Microseconds()) / 1000.0},
		time.Now(),
	)
	r.writeAPI.WritePoint(p)
}

// RecordCacheSizes records the per-kind entity counts as one point per
// kind.
func (r *Recorder) RecordCacheSizes(sizes map[entity.Kind]int) {
	now := time.Now()
	for kind, n := range sizes {
		p := influxdb2.NewPoint("cache_size",
			map[string]string{"shard": r.shard, "kind": string(kind)},
			map[string]any{"count": n},
			now,
		)
		r.writeAPI.WritePoint(p)
	}
}

// Close flushes buffered points and releases the client.
func (r *Recorder) Close() {
	r.writeAPI.Flush()
	r.client.Close()
}
