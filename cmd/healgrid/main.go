// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// healgrid erases the given grid lines from a binarised chart image
// and heals the gaps they leave in any curves that crossed them.
// Finding the grid lines is up to the caller; healgrid only erases
// the rows and columns it is told to.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"rescribe.xyz/preproc"

	gridheal "github.com/zhushijie167110/engauge-digitizer"
)

// parselines parses a comma separated list of line indices
func parselines(s string) ([]int, error) {
	var lines []int
	if s == "" {
		return lines, nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad line number %s: %v", part, err)
		}
		lines = append(lines, n)
	}
	return lines, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: healgrid [-d num] [-hlines rows] [-vlines cols] [-wipe] [-graph file] [-v] inimg outimg\n")
		flag.PrintDefaults()
	}
	dist := flag.Float64("d", 10.0, "Maximum distance between region centroids for them to be connected")
	hlines := flag.String("hlines", "", "Comma separated rows of horizontal grid lines to erase")
	vlines := flag.String("vlines", "", "Comma separated columns of vertical grid lines to erase")
	wipe := flag.Bool("wipe", false, "Wipe noise from the page edges before erasing")
	graphfile := flag.String("graph", "", "Save a graph of region separations to this file")
	verbose := flag.Bool("v", false, "Verbose")
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	}

	rows, err := parselines(*hlines)
	if err != nil {
		log.Fatalf("Could not parse -hlines: %v\n", err)
	}
	cols, err := parselines(*vlines)
	if err != nil {
		log.Fatalf("Could not parse -vlines: %v\n", err)
	}

	inpath := flag.Arg(0)
	if *wipe {
		wiped := filepath.Join(os.TempDir(), "healgrid_wiped.png")
		err = preproc.WipeFile(inpath, wiped, 5, 0.03, 30, 120, 0.005, 30)
		if err != nil {
			log.Fatalf("Could not wipe %s: %v\n", inpath, err)
		}
		defer os.Remove(wiped)
		inpath = wiped
	}

	f, err := os.Open(inpath)
	if err != nil {
		log.Fatalf("Could not open file %s: %v\n", inpath, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		log.Fatalf("Could not decode image: %v\n", err)
	}

	healer := gridheal.NewHealer(img, *dist)
	healer.Logger = verboselog

	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	for _, row := range rows {
		healer.EraseRow(row)
	}
	for _, col := range cols {
		healer.EraseCol(col)
	}

	// Clear the erased grid line pixels from the output before
	// healing paints over them
	grid := healer.Grid()
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if grid.StateAt(col, row) == gridheal.Removed {
				out.Set(col, row, color.White)
			}
		}
	}

	healer.Heal(out)

	if *graphfile != "" {
		gf, err := os.Create(*graphfile)
		if err != nil {
			log.Fatalf("Could not create file %s: %v\n", *graphfile, err)
		}
		err = healer.Graph(filepath.Base(flag.Arg(0)), gf)
		gf.Close()
		if err != nil {
			log.Printf("Could not graph regions: %v\n", err)
		}
	}

	f, err = os.Create(flag.Arg(1))
	if err != nil {
		log.Fatalf("Could not create file %s: %v\n", flag.Arg(1), err)
	}
	defer f.Close()
	err = png.Encode(f, out)
	if err != nil {
		log.Fatalf("Could not encode image: %v\n", err)
	}
}
