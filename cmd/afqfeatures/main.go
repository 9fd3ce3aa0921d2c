// SPDX-License-Identifier: MIT

// Command afqfeatures turns an AFQ tract-profile CSV into a feature matrix.
//
//	afqfeatures build nodes.csv --format wide -o features.csv
//	afqfeatures groups nodes.csv
//	afqfeatures labels nodes.csv --symmetry=false
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
