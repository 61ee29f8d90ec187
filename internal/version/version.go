package version

// Build metadata, injected via -ldflags at release time.
var (
	// Version is the semantic version of the build
	Version = "dev"
	// GitCommit is the commit SHA the binary was built from
	GitCommit = ""
	// BuildDate is the build timestamp
	BuildDate = ""
)
