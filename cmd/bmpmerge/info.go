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

package main

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bmpmerge/bmp"
	"github.com/ajroetker/go-bmpmerge/merge"
)

func newInfoCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file.bmp ...]",
		Short: "Print bitmap headers, or the runtime configuration when no file is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				eng := root.newEngine()
				defer eng.Close()
				lvl := merge.CurrentLevel()
				fmt.Fprintf(w, "simd: %s (%d bytes)\n", lvl, lvl.Width())
				fmt.Fprintf(w, "workers: %d\n", eng.Workers())
				fmt.Fprintf(w, "gomaxprocs: %d\n", runtime.GOMAXPROCS(0))
				return nil
			}

			codec := bmp.NewCodec(bmp.WithLogger(root.logger))
			for _, path := range args {
				img, err := codec.ReadFile(path)
				if err != nil {
					return err
				}
				if err := printHeader(w, path, img); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printHeader(w io.Writer, path string, img bmp.Image) error {
	h := img.Header()
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "file:\t%s\n", path)
	fmt.Fprintf(tw, "signature:\t%#04x (valid=%t)\n", h.Signature, h.Valid())
	fmt.Fprintf(tw, "file size:\t%d bytes\n", h.FileSize)
	fmt.Fprintf(tw, "pixel offset:\t%d\n", h.Offset)
	fmt.Fprintf(tw, "info size:\t%d\n", h.InfoSize)
	fmt.Fprintf(tw, "dimensions:\t%dx%d\n", h.Width, h.Height)
	fmt.Fprintf(tw, "planes:\t%d\n", h.Planes)
	fmt.Fprintf(tw, "bits per pixel:\t%d\n", h.BitsPerPixel)
	fmt.Fprintf(tw, "compression:\t%d\n", h.Compression)
	fmt.Fprintf(tw, "image size:\t%d\n", h.ImageSize)
	fmt.Fprintf(tw, "resolution:\t%dx%d px/m\n", h.XPixelsPerMeter, h.YPixelsPerMeter)
	fmt.Fprintf(tw, "colors:\t%d used, %d important\n", h.ColorsUsed, h.ImportantColors)
	fmt.Fprintf(tw, "payload:\t%d samples\n", len(img.Pixels()))
	return tw.Flush()
}
