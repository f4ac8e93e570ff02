package version

// Set at build time with -ldflags "-X github.com/Layr-Labs/hhconfig/internal/version.version=..."
var (
	version = "development"
	commit  = "unknown"
)

func GetVersion() string {
	return version
}

func GetCommit() string {
	return commit
}
