package buildinfo

// Platform is the host operating system the binary was built for.
const Platform = "macOS"
