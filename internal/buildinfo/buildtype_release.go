//go:build !debug

package buildinfo

const (
	IsDebug   = false
	BuildType = "Release"
)
