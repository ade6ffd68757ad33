// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Muhurta windows, polar day/night handling, GPIO haptic feedback
// 0.2.0 - Built-in ephemeris for the full roster, target picker, calibration persistence
// 0.1.0 - Initial release: alignment TUI, orientation smoothing, lock hysteresis
