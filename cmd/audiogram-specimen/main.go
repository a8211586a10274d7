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

// Audiogram-specimen writes a sample sheet with form fields, a centered
// caption and all audiogram symbols to a PDF file, and optionally renders
// the same sheet to a PNG image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/audiogram"
	"seehuhn.de/go/audiogram/canvas"
	"seehuhn.de/go/audiogram/pdfcanvas"
	"seehuhn.de/go/audiogram/raster"
)

const fontID canvas.FontID = "F"

func main() {
	out := flag.String("o", "specimen.pdf", "name of the PDF output file")
	pngOut := flag.String("png", "", "also write a PNG preview to this file")
	dpi := flag.Float64("dpi", 150, "resolution of the PNG preview")
	fontFile := flag.String("font", "", "TrueType font file (default: Go Regular)")
	caption := flag.String("caption", "", "caption text")
	flag.Parse()

	ttf := goregular.TTF
	if *fontFile != "" {
		var err error
		ttf, err = os.ReadFile(*fontFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	opt := &audiogram.SpecimenOptions{Caption: *caption}

	err := writePDF(*out, ttf, opt)
	if err != nil {
		log.Fatal(err)
	}

	if *pngOut != "" {
		err = writePNG(*pngOut, ttf, *dpi, opt)
		if err != nil {
			log.Fatal(err)
		}
	}
}

func writePDF(fname string, ttf []byte, opt *audiogram.SpecimenOptions) error {
	c, err := pdfcanvas.Create(fname, audiogram.LetterWidth, audiogram.LetterHeight,
		&pdf.WriterOptions{HumanReadable: true})
	if err != nil {
		return err
	}
	err = c.RegisterFont(fontID, ttf)
	if err != nil {
		c.Close()
		return err
	}
	err = audiogram.DrawSpecimen(c, fontID, opt)
	if err != nil {
		c.Close()
		return err
	}
	return c.Close()
}

func writePNG(fname string, ttf []byte, dpi float64, opt *audiogram.SpecimenOptions) (err error) {
	c := raster.NewCanvas(audiogram.LetterWidth, audiogram.LetterHeight, dpi)
	err = c.RegisterFont(fontID, ttf)
	if err != nil {
		return err
	}
	err = audiogram.DrawSpecimen(c, fontID, opt)
	if err != nil {
		return err
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := fd.Close()
		if err == nil {
			err = closeErr
		}
	}()
	err = c.WritePNG(fd)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
