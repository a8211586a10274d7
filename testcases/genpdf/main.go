// seehuhn.de/go/audiogram - vector symbols for audiogram reports
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf writes reference files for all test cases.  For every
// case it creates a PDF file and a PNG preview rendered by package raster,
// so that the two backends can be compared visually.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/pdfcanvas"
	"seehuhn.de/go/audiogram/raster"
	"seehuhn.de/go/audiogram/testcases"
)

const fontID canvas.FontID = "F"

func main() {
	refDir := flag.String("dir", "testdata/reference", "output directory")
	dpi := flag.Float64("dpi", 300, "resolution of the PNG files")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0o755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if err := generatePNG(tc, pngPath, *dpi); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	c, err := pdfcanvas.Create(pdfPath, tc.Width, tc.Height, nil)
	if err != nil {
		return err
	}
	err = c.RegisterFont(fontID, goregular.TTF)
	if err == nil {
		err = tc.Draw(c, fontID)
	}
	closeErr := c.Close()
	if err != nil {
		return err
	}
	return closeErr
}

func generatePNG(tc testcases.TestCase, pngPath string, dpi float64) error {
	c := raster.NewCanvas(tc.Width, tc.Height, dpi)
	if err := c.RegisterFont(fontID, goregular.TTF); err != nil {
		return err
	}
	if err := tc.Draw(c, fontID); err != nil {
		return err
	}

	fd, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = c.WritePNG(fd)
	closeErr := fd.Close()
	if err != nil {
		return fmt.Errorf("writing %s: %w", pngPath, err)
	}
	return closeErr
}
