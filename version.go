// Package sharepointgo provides the version information for sharepoint-go.
package sharepointgo

// Version is the current version of sharepoint-go.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
