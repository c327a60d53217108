//go:build debug

package buildinfo

const (
	IsDebug   = true
	BuildType = "Debug"
)
