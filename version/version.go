package version

// Version is the current doppel release.
var Version = "1.1.0"
