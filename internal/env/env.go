package env

// Build metadata, overridden at link time with -ldflags.
var (
	AppName    = "filespect"
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
