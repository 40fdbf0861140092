// Command teamcode converts between team layouts and share codes offline.
//
// Usage:
//
//	teamcode encode [file]        layout JSON (file or stdin) to share code
//	teamcode decode <code|url>    share code or share URL to layout JSON
//	teamcode url <code> --base B  share link for a code
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
