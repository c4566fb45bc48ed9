package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/nerrad567/slipstream-core/entity"
)

func TestNewRecorder_RequiresURL(t *testing.T) {
	if _, err := NewRecorder(Config{}, "0"); !errors.Is(err, ErrMissingURL) {
		t.Errorf("NewRecorder() error = %v, want ErrMissingURL", err)
	}
}

func TestRecorder_WriteAndClose(t *testing.T) {
	// The write API buffers asynchronously, so recording against an
	// unreachable endpoint exercises the full path without a server.
	r, err := NewRecorder(Config{
		URL:    "http://127.0.0.1:0",
		Token:  "test",
		Org:    "test",
		Bucket: "test",
	}, "0")
	if err != nil {
		t.Fatalf("NewRecorder() error = %v", err)
	}

	r.RecordRestPing(12 * time.Millisecond)
	r.RecordGatewayPing(3 * time.Millisecond)
	r.RecordCacheSizes(map[entity.Kind]int{entity.KindUser: 5})
	r.Close()
}
