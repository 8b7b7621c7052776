package main

import (
	"github.com/Dicklesworthstone/sysview/internal/cli"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
