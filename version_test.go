package sharepointgo

import "testing"

func TestGetVersion(t *testing.T) {
	t.Parallel()

	if GetVersion() != Version {
		t.Errorf("GetVersion() = %s, want %s", GetVersion(), Version)
	}
	if Version == "" {
		t.Error("Version must not be empty")
	}
}
