// Package utils provides bespoke, one off utils that don't make sense to be
// their own package
package utils

// Set at build time with -ldflags "-X github.com/papercomputeco/oasis/pkg/utils.Version=..."
var (
	Version   = "dev"
	Sha       = "HEAD"
	Buildtime = "dev"
)
