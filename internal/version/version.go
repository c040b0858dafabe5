// ABOUTME: Version constants
// ABOUTME: Identifies the product in logs and the preview binary
package version

const (
	Version      = "0.1.0"
	Product      = "Respeed"
	Manufacturer = "sfxkit"
)
