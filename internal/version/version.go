package version

// Version is overridden at build time with -ldflags "-X cellsign/internal/version.Version=...".
var Version = "dev"
