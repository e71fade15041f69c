package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/felixgeelhaar/sharepoint-go/domain/tool"
)

func buildTool(t *testing.T, b *tool.Builder) tool.Tool {
	t.Helper()
	return b.MustBuild()
}

func TestDescribeAnnotations(t *testing.T) {
	t.Parallel()

	handler := func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
		return tool.Result{}, nil
	}

	tests := []struct {
		name    string
		builder *tool.Builder
		want    string
	}{
		{
			name:    "read-only",
			builder: tool.NewBuilder("t").WithDescription("Lists things").ReadOnly().WithHandler(handler),
			want:    "Lists things [read-only]",
		},
		{
			name:    "destructive",
			builder: tool.NewBuilder("t").WithDescription("Deletes things").Destructive().WithHandler(handler),
			want:    "Deletes things [destructive]",
		},
		{
			name:    "unannotated",
			builder: tool.NewBuilder("t").WithDescription("Creates things").WithHandler(handler),
			want:    "Creates things",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := describe(buildTool(t, tt.builder)); got != tt.want {
				t.Errorf("describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBridgeReturnsOutput(t *testing.T) {
	t.Parallel()

	tl := tool.NewBuilder("echo").
		WithHandler(func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			return tool.Result{Output: json.RawMessage(`{"echoed":true}`)}, nil
		}).
		MustBuild()

	out, err := bridge(tl)(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("bridge handler error = %v", err)
	}
	if out != `{"echoed":true}` {
		t.Errorf("bridge output = %s", out)
	}
}

func TestBridgePassesErrorThrough(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("remote failure")
	tl := tool.NewBuilder("broken").
		WithHandler(func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			return tool.Result{}, sentinel
		}).
		MustBuild()

	_, err := bridge(tl)(context.Background(), nil)
	if !errors.Is(err, sentinel) {
		t.Errorf("bridge error = %v, want %v", err, sentinel)
	}
}
