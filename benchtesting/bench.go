package main

import (
	"fmt"
	"time"

	"github.com/kpfaulkner/gfxmaths/util"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

const steps = 10_000_000

type sweep struct {
	name string
	fn   func(t float32) float32
}

func main() {

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	sweeps := []sweep{
		{"Lerp", func(t float32) float32 { return util.Lerp(-10, 10, t) }},
		{"SmoothStep", func(t float32) float32 { return util.SmoothStep(-10, 10, t) }},
		{"Hermite", func(t float32) float32 { return util.Hermite(0, 1, 10, -1, t) }},
		{"CatmullRom", func(t float32) float32 { return util.CatmullRom(0, 1, 4, 9, t) }},
		{"WrapAngle", func(t float32) float32 { return util.WrapAngle(t * 1000) }},
	}

	start := time.Now()
	for _, s := range sweeps {
		sweepStart := time.Now()
		var acc float32
		for i := 0; i < steps; i++ {
			acc += s.fn(float32(i) / steps)
		}
		if acc != acc {
			log.Errorf("%s produced NaN", s.name)
		}
		fmt.Printf("%s took %d ms (checksum %f)\n", s.name, time.Since(sweepStart).Milliseconds(), acc)
	}
	fmt.Printf("total time %d ms\n", time.Since(start).Milliseconds())
}
