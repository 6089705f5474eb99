// Command ink-and-iron-gen generates a world map from the command line
// and optionally exports it as a PNG.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/cosiestdevil/ink-and-iron/worldgen"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	width          = flag.Float64("width", 16.0, "domain width in world units")
	height         = flag.Float64("height", 9.0, "domain height in world units")
	plateCount     = flag.Int("plate-count", 10, "number of tectonic plates")
	plateSize      = flag.Int("plate-size", 10, "cells per plate in the coarse partition")
	continentCount = flag.Int("continent-count", 55, "number of continent seeds")
	continentSize  = flag.Int("continent-size", 350, "cells per continent")
	oceanCount     = flag.Int("ocean-count", 66, "number of ocean seeds")
	oceanSize      = flag.Int("ocean-size", 250, "cells per ocean")
	seedStr        = flag.String("seed", "", "base-36 world seed (random if empty)")
	out            = flag.String("out", "world.png", "output PNG path (empty to skip export)")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	seed := time.Now().UnixNano()
	if *seedStr != "" {
		var err error
		seed, err = strconv.ParseInt(*seedStr, 36, 64)
		if err != nil {
			log.Fatal("invalid seed: ", err)
		}
	}

	params := worldgen.NewParams()
	params.Width = *width
	params.Height = *height
	params.PlateCount = *plateCount
	params.PlateSize = *plateSize
	params.ContinentCount = *continentCount
	params.ContinentSize = *continentSize
	params.OceanCount = *oceanCount
	params.OceanSize = *oceanSize

	worldMap, err := worldgen.Generate(params, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Seed: ", strconv.FormatInt(seed, 36))

	if *out != "" {
		if err := worldMap.ExportPNG(*out); err != nil {
			log.Fatal(err)
		}
		log.Println("Wrote ", *out)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
