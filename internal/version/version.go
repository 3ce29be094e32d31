package version

// Version is overridden at build time with -ldflags "-X dbgraph/internal/version.Version=...".
var Version = "dev"
