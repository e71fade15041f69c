package tool

// Registry defines the interface for tool registration and lookup.
// The in-memory implementation lives in infrastructure/memory.
type Registry interface {
	// Register adds a tool to the registry.
	Register(tool Tool) error

	// Get retrieves a tool by name.
	Get(name string) (Tool, bool)

	// List returns all registered tools.
	List() []Tool

	// Names returns all registered tool names.
	Names() []string
}
