// Command authtui is a terminal sign-up and sign-in client for a
// better-auth style API, with email registration and Google or GitHub
// sign-in.
package main

import (
	"fmt"
	"os"

	"github.com/interviewfun/authtui/cmd"
)

// Set with -ldflags "-X main.version=..." by release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(fmt.Sprintf("%s (%s, %s)", version, commit, date))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
