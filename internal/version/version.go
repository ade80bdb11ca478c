// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Playground panel, body comparison, guided tour, 3D window
// 0.2.0 - Asteroid belt, progressive reveal, camera fly-to targets
// 0.1.0 - Initial release: terminal orrery, headless snapshot and summary modes
