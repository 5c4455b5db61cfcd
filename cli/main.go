package main

import (
	"context"
	"encoding/json"
	"flag"
	"image"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/pointcloud"

	regiondetection "github.com/ben-greenberg/Region-Detection"
	"github.com/ben-greenberg/Region-Detection/region_curve"
)

func main() {
	configPath := flag.String("config", "", "path to pipeline config JSON file (optional)")
	pcdPath := flag.String("pcd", "", "write detected region boundary points to this PCD file (optional)")
	flag.Parse()

	logger := logging.NewLogger("region-detection-cli")

	cfg := regioncurve.DefaultConfig()
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			logger.Fatal(err)
		}
		var attrs map[string]interface{}
		if err := json.Unmarshal(raw, &attrs); err != nil {
			logger.Fatal(err)
		}
		parsed, err := regioncurve.ParseConfig(attrs)
		if err != nil {
			logger.Fatal(err)
		}
		cfg = *parsed
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	detector, err := regiondetection.NewRegionDetector(&cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}

	// No capture source is wired up here, so run the pipeline over a
	// synthetic flat square region to exercise the full flow.
	frame := demoFrame()
	results, err := detector.Compute(ctx, []regiondetection.DataBundle{frame})
	if err != nil {
		logger.Fatal(err)
	}

	logger.Infof("Closed regions: %d", len(results.ClosedRegionPoses))
	logger.Infof("Open regions: %d", len(results.OpenRegionPoses))
	for i, region := range results.ClosedRegionPoses {
		logger.Infof("  Closed region %d: %d poses", i, len(region))
		if len(region) > 0 {
			p := region[0].Point()
			logger.Infof("    start=(%.1f, %.1f, %.1f)", p.X, p.Y, p.Z)
		}
	}

	if *pcdPath != "" {
		cloud, err := results.PointCloud()
		if err != nil {
			logger.Fatal(err)
		}
		f, err := os.Create(*pcdPath)
		if err != nil {
			logger.Fatal(err)
		}
		defer f.Close()
		if err := pointcloud.ToPCD(cloud, f, pointcloud.PCDBinary); err != nil {
			logger.Fatal(err)
		}
		logger.Infof("Wrote %d points to %s", cloud.Size(), *pcdPath)
	}
}

// demoFrame builds a flat grid cloud at 2mm pitch with a square boundary
// contour, enough to produce one closed region end to end.
func demoFrame() regiondetection.DataBundle {
	const (
		size  = 60
		pitch = 2.0
	)
	cloud := &regiondetection.OrganizedCloud{
		Width:  size,
		Height: size,
		Points: make([]r3.Vector, size*size),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cloud.Points[y*size+x] = r3.Vector{X: float64(x) * pitch, Y: float64(y) * pitch, Z: 0}
		}
	}
	// Poke a hole into the boundary to show invalid cells get skipped.
	nan := math.NaN()
	cloud.Points[10*size+30] = r3.Vector{X: nan, Y: nan, Z: nan}

	var contour []image.Point
	lo, hi := 10, 49
	for x := lo; x <= hi; x++ {
		contour = append(contour, image.Point{X: x, Y: lo})
	}
	for y := lo + 1; y <= hi; y++ {
		contour = append(contour, image.Point{X: hi, Y: y})
	}
	for x := hi - 1; x >= lo; x-- {
		contour = append(contour, image.Point{X: x, Y: hi})
	}
	for y := hi - 1; y > lo; y-- {
		contour = append(contour, image.Point{X: lo, Y: y})
	}

	return regiondetection.DataBundle{
		Contours: [][]image.Point{contour},
		Cloud:    cloud,
	}
}
