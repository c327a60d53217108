// Package buildinfo exposes the project metadata resolved at compile time.
//
// BuildType and IsDebug are selected by the "debug" build tag:
//
//	go build -tags debug ./cmd/showcase
package buildinfo

import (
	"fmt"
	"io"
	"runtime"

	"showcase/internal/console"
)

const (
	// ProjectName is the name printed in the build banner.
	ProjectName = "showcase"
	// Version is the release version of the program.
	Version = "1.0.0"
)

// Compiler is the Go toolchain that produced the binary ("gc" or "gccgo").
const Compiler = runtime.Compiler

// Info is a snapshot of the build metadata.
type Info struct {
	ProjectName string `json:"project_name"`
	Version     string `json:"version"`
	BuildType   string `json:"build_type"`
	Platform    string `json:"platform"`
	Compiler    string `json:"compiler"`
	GoVersion   string `json:"go_version"`
}

// Current returns the metadata of the running binary.
func Current() Info {
	return Info{
		ProjectName: ProjectName,
		Version:     Version,
		BuildType:   BuildType,
		Platform:    Platform,
		Compiler:    Compiler,
		GoVersion:   runtime.Version(),
	}
}

// Print writes the build banner for the running binary.
func Print(w io.Writer) {
	Current().Print(w)
}

// Print writes the build banner. GoVersion is not part of it.
func (i Info) Print(w io.Writer) {
	fmt.Fprintf(w, "%s\n", console.Rule)
	fmt.Fprintf(w, "  %s v%s\n", i.ProjectName, i.Version)
	fmt.Fprintf(w, "%s\n", console.Rule)
	fmt.Fprintf(w, "  Build Type: %s\n", i.BuildType)
	fmt.Fprintf(w, "  Platform:   %s\n", i.Platform)
	fmt.Fprintf(w, "  Compiler:   %s\n", i.Compiler)
	fmt.Fprintf(w, "%s\n", console.Rule)
}
