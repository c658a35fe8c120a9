package services_test

import (
	"context"
	"testing"

	"mazecache/internal/services"
)

func TestContextCarriers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithSeriesID(ctx, 42)
	ctx = services.WithSeriesName(ctx, "Monkey Island")
	ctx = services.WithRequestID(ctx, "trace-7")

	if id, ok := services.SeriesIDFromContext(ctx); !ok || id != 42 {
		t.Fatalf("series id = %v (ok=%v), want 42", id, ok)
	}
	if name, ok := services.SeriesNameFromContext(ctx); !ok || name != "Monkey Island" {
		t.Fatalf("series name = %q (ok=%v)", name, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "trace-7" {
		t.Fatalf("request id = %q (ok=%v)", rid, ok)
	}
}

func TestSeriesNameBlankPreservesContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithSeriesName(ctx, "")
	if _, ok := services.SeriesNameFromContext(ctx); ok {
		t.Fatal("expected no series name value")
	}
}
