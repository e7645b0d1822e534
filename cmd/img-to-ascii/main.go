package main

import (
	"log"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Logs go to stderr; stdout carries frames and the MCP protocol.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// debugEnabled reports whether debug logging was requested through the
// environment or the --verbose flag.
func debugEnabled(verbose bool) bool {
	return verbose || os.Getenv("IMG2ASCII_LOG_LEVEL") == "debug"
}
