package pack

import (
	"context"
	"encoding/json"
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

func TestBuilder(t *testing.T) {
	t.Parallel()

	p := NewBuilder("test").
		WithDescription("Test pack").
		WithVersion("1.2.3").
		AddTools(stubTool(t, "a"), stubTool(t, "b")).
		Build()

	if p.Name != "test" || p.Description != "Test pack" || p.Version != "1.2.3" {
		t.Errorf("unexpected pack metadata %+v", p)
	}

	names := p.ToolNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("ToolNames() = %v", names)
	}
}

func TestGetTool(t *testing.T) {
	t.Parallel()

	p := NewBuilder("test").AddTools(stubTool(t, "a")).Build()

	if _, ok := p.GetTool("a"); !ok {
		t.Error("GetTool(a) not found")
	}
	if _, ok := p.GetTool("missing"); ok {
		t.Error("GetTool(missing) should not be found")
	}
}

// recordingRegistry captures registered tools.
type recordingRegistry struct {
	registered []string
	failOn     string
}

func (r *recordingRegistry) Register(t tool.Tool) error {
	if t.Name() == r.failOn {
		return tool.ErrToolExists
	}
	r.registered = append(r.registered, t.Name())
	return nil
}

func (r *recordingRegistry) Get(name string) (tool.Tool, bool) { return nil, false }
func (r *recordingRegistry) List() []tool.Tool                 { return nil }
func (r *recordingRegistry) Names() []string                   { return r.registered }

func TestRegister(t *testing.T) {
	t.Parallel()

	p := NewBuilder("test").AddTools(stubTool(t, "a"), stubTool(t, "b")).Build()

	reg := &recordingRegistry{}
	if err := p.Register(reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if len(reg.registered) != 2 {
		t.Errorf("registered = %v", reg.registered)
	}
}

func TestRegisterPropagatesError(t *testing.T) {
	t.Parallel()

	p := NewBuilder("test").AddTools(stubTool(t, "a"), stubTool(t, "b")).Build()

	reg := &recordingRegistry{failOn: "b"}
	if err := p.Register(reg); err == nil {
		t.Error("expected error from failing registry")
	}
}
