// internal/version/version.go
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X ganflu/internal/version.Version=1.2.0" ./cmd/...
var Version = "dev"
