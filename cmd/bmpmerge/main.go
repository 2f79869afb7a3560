// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command bmpmerge blends two uncompressed bitmaps sample by sample.
//
// Usage:
//
//	bmpmerge merge -s parallel -o average -w 0.7 a.bmp b.bmp out.bmp
//	bmpmerge verify a.bmp b.bmp      # run every strategy and compare outputs
//	bmpmerge info a.bmp              # print header fields
//
// The worker count of the parallel strategy defaults to GOMAXPROCS and can
// be set with --workers or the BMPMERGE_WORKERS environment variable.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
