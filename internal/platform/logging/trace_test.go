package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

const validTraceparent = "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01"

func TestParseTraceparent(t *testing.T) {
	tc, ok := parseTraceparent(validTraceparent)
	if !ok {
		t.Fatal("expected valid traceparent")
	}
	if tc.traceID != "3d23d071b5bfd6579171efce907685cb" {
		t.Fatalf("unexpected trace ID: %s", tc.traceID)
	}
	if tc.spanID != "08f067aa0ba902b7" {
		t.Fatalf("unexpected span ID: %s", tc.spanID)
	}
	if !tc.sampled {
		t.Fatal("expected sampled flag")
	}
}

func TestParseTraceparentNotSampled(t *testing.T) {
	tc, ok := parseTraceparent("00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-00")
	if !ok {
		t.Fatal("expected valid traceparent")
	}
	if tc.sampled {
		t.Fatal("expected unsampled trace")
	}
}

func TestParseTraceparentInvalid(t *testing.T) {
	for _, header := range []string{
		"",
		"invalid",
		"trace/span;o=1",
		"00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7",
		"00-3d23d071b5bfd6579171efce907685c-08f067aa0ba902b7-01",
		"00-zz23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01",
	} {
		if _, ok := parseTraceparent(header); ok {
			t.Fatalf("expected %q to be rejected", header)
		}
	}
}

func TestTraceContextFields(t *testing.T) {
	tc, _ := parseTraceparent(validTraceparent)
	fields := tc.fields("test-project")
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}

	wantTrace := "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb"
	if fields[0].Key != "logging.googleapis.com/trace" || fields[0].String != wantTrace {
		t.Fatalf("unexpected trace field: %+v", fields[0])
	}
	if fields[1].Key != "logging.googleapis.com/spanId" || fields[1].String != "08f067aa0ba902b7" {
		t.Fatalf("unexpected span field: %+v", fields[1])
	}
	if fields[2].Key != "logging.googleapis.com/trace_sampled" || fields[2].Type != zapcore.BoolType ||
		fields[2].Integer != 1 {
		t.Fatalf("unexpected sampled field: %+v", fields[2])
	}
}
