package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/felixgeelhaar/sharepoint-go/domain/tool"
)

func stubTool(t *testing.T, name string) tool.Tool {
	t.Helper()
	return tool.NewBuilder(name).
		WithHandler(func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			return tool.Result{}, nil
		}).
		MustBuild()
}

func TestRegisterAndGet(t *testing.T) {
	t.Parallel()

	r := NewToolRegistry()
	if err := r.Register(stubTool(t, "a")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, ok := r.Get("a")
	if !ok || got.Name() != "a" {
		t.Errorf("Get(a) = %v, %v", got, ok)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should not be found")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()

	r := NewToolRegistry()
	if err := r.Register(stubTool(t, "a")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(stubTool(t, "a")); !errors.Is(err, tool.ErrToolExists) {
		t.Errorf("Register() error = %v, want ErrToolExists", err)
	}
}

func TestListAndNamesSorted(t *testing.T) {
	t.Parallel()

	r := NewToolRegistry()
	for _, name := range []string{"c", "a", "b"} {
		if err := r.Register(stubTool(t, name)); err != nil {
			t.Fatalf("Register(%s) error = %v", name, err)
		}
	}

	names := r.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("Names() = %v, want sorted", names)
	}

	tools := r.List()
	if len(tools) != 3 || tools[0].Name() != "a" {
		t.Errorf("List() order unexpected")
	}
}
