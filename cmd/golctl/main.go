// Command golctl drives the rule engine without a window: headless runs,
// rulestring tooling and pattern file utilities.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
