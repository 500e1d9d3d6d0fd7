// Package version holds the release version reported by --version.
package version

// Version is overridden at release time with -ldflags "-X".
var Version = "0.1.0-dev"
