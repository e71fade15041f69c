package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	handler := func(ctx context.Context, input json.RawMessage) (Result, error) {
		return NewResult(json.RawMessage(`{"ok":true}`)), nil
	}

	tl, err := NewBuilder("test_tool").
		WithDescription("A test tool").
		ReadOnly().
		Idempotent().
		WithHandler(handler).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if tl.Name() != "test_tool" {
		t.Errorf("Name = %s, want test_tool", tl.Name())
	}
	if tl.Description() != "A test tool" {
		t.Errorf("Description = %s", tl.Description())
	}
	if !tl.Annotations().ReadOnly {
		t.Error("expected ReadOnly annotation")
	}
	if !tl.Annotations().Idempotent {
		t.Error("expected Idempotent annotation")
	}
	if tl.Annotations().Destructive {
		t.Error("unexpected Destructive annotation")
	}

	result, err := tl.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.OutputString() != `{"ok":true}` {
		t.Errorf("Output = %s", result.OutputString())
	}
}

func TestBuilderEmptyName(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder("").
		WithHandler(func(ctx context.Context, input json.RawMessage) (Result, error) {
			return Result{}, nil
		}).
		Build()
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("Build() error = %v, want ErrEmptyName", err)
	}
}

func TestBuilderNoHandler(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder("no_handler").Build()
	if !errors.Is(err, ErrNoHandler) {
		t.Errorf("Build() error = %v, want ErrNoHandler", err)
	}
}

func TestMustBuildPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic from MustBuild")
		}
	}()
	NewBuilder("").MustBuild()
}

func TestMarshalResult(t *testing.T) {
	t.Parallel()

	result, err := MarshalResult(map[string]int{"count": 3})
	if err != nil {
		t.Fatalf("MarshalResult() error = %v", err)
	}

	var out map[string]int
	if err := json.Unmarshal(result.Output, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["count"] != 3 {
		t.Errorf("count = %d, want 3", out["count"])
	}
}

func TestObjectSchema(t *testing.T) {
	t.Parallel()

	schema := ObjectSchema(map[string]json.RawMessage{
		"path": StringProperty("a path"),
	}, []string{"path"})

	if schema.IsEmpty() {
		t.Fatal("schema should not be empty")
	}

	var decoded struct {
		Type       string                     `json:"type"`
		Properties map[string]json.RawMessage `json:"properties"`
		Required   []string                   `json:"required"`
	}
	if err := json.Unmarshal(schema.Raw(), &decoded); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	if decoded.Type != "object" {
		t.Errorf("type = %s, want object", decoded.Type)
	}
	if _, ok := decoded.Properties["path"]; !ok {
		t.Error("missing path property")
	}
	if len(decoded.Required) != 1 || decoded.Required[0] != "path" {
		t.Errorf("required = %v", decoded.Required)
	}
}

func TestEmptySchema(t *testing.T) {
	t.Parallel()

	if !EmptySchema().IsEmpty() {
		t.Error("EmptySchema() should be empty")
	}
}
