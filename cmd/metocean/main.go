// Command metocean runs one metocean helper from the command line and
// prints the result as JSON.
//
// Usage:
//
//	metocean dist -lon1 174.76 -lat1 -36.85 -lon2 174.78 -lat2 -41.29
//	metocean nearest -lon 174.5 -lat -36.9 -lons 174,174.25,174.5 -lats -37,-36.5
//	metocean nearest -lon 174.5 -lat -36.9 -grid grid.nc
//	metocean central-date -start 2021-05-01T00:00:00Z -end 2021-05-31T00:00:00Z
//	metocean magdec -lon 174.76 -lat -36.85 -date 2021-05-16
//	metocean polar -u 1,0 -v 0,1 -category current
//	metocean components -speed 1,2 -dir 90,270 -category wind
//	metocean dirstats -series 350,nan,10
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	metocean "github.com/couchcryptid/metocean-kit"
	"github.com/couchcryptid/metocean-kit/bgs"
	"github.com/couchcryptid/metocean-kit/ncgrid"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	if code := run(os.Args[1], os.Args[2:]); code != 0 {
		os.Exit(code)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: metocean <dist|nearest|central-date|magdec|polar|components|dirstats> [flags]")
}

func run(command string, args []string) int {
	var err error
	switch command {
	case "dist":
		err = runDist(args)
	case "nearest":
		err = runNearest(args)
	case "central-date":
		err = runCentralDate(args)
	case "magdec":
		err = runMagDec(args)
	case "polar":
		err = runPolar(args)
	case "components":
		err = runComponents(args)
	case "dirstats":
		err = runDirStats(args)
	default:
		usage()
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "metocean %s: %v\n", command, err)
		return 1
	}
	return 0
}

func runDist(args []string) error {
	fs := flag.NewFlagSet("dist", flag.ExitOnError)
	lon1 := fs.Float64("lon1", 0, "longitude of site 1 (decimal degrees)")
	lat1 := fs.Float64("lat1", 0, "latitude of site 1 (decimal degrees)")
	lon2 := fs.Float64("lon2", 0, "longitude of site 2 (decimal degrees)")
	lat2 := fs.Float64("lat2", 0, "latitude of site 2 (decimal degrees)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	metres, err := metocean.Distance(*lon1, *lat1, *lon2, *lat2)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"metres": metres})
}

func runNearest(args []string) error {
	fs := flag.NewFlagSet("nearest", flag.ExitOnError)
	lon := fs.Float64("lon", 0, "site longitude (decimal degrees)")
	lat := fs.Float64("lat", 0, "site latitude (decimal degrees)")
	lons := fs.String("lons", "", "comma-separated longitude axis")
	lats := fs.String("lats", "", "comma-separated latitude axis")
	grid := fs.String("grid", "", "NetCDF file to read the axes from instead of -lons/-lats")
	lonVar := fs.String("lon-var", "", "longitude variable name in the NetCDF file")
	latVar := fs.String("lat-var", "", "latitude variable name in the NetCDF file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		lonArr, latArr []float64
		err            error
	)
	if *grid != "" {
		axes, err := ncgrid.Open(*grid, *lonVar, *latVar)
		if err != nil {
			return err
		}
		lonArr, latArr = axes.Lon, axes.Lat
	} else {
		if lonArr, err = parseFloats(*lons); err != nil {
			return fmt.Errorf("parse -lons: %w", err)
		}
		if latArr, err = parseFloats(*lats); err != nil {
			return fmt.Errorf("parse -lats: %w", err)
		}
	}

	i, j, err := metocean.NearestIndex(*lon, *lat, lonArr, latArr)
	if err != nil {
		return err
	}
	return printJSON(map[string]int{"i": i, "j": j})
}

func runCentralDate(args []string) error {
	fs := flag.NewFlagSet("central-date", flag.ExitOnError)
	startStr := fs.String("start", "", "initial date, RFC 3339")
	endStr := fs.String("end", "", "final date, RFC 3339")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := time.Parse(time.RFC3339, *startStr)
	if err != nil {
		return fmt.Errorf("parse -start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, *endStr)
	if err != nil {
		return fmt.Errorf("parse -end: %w", err)
	}

	return printJSON(map[string]string{
		"central": metocean.CentralDate(start, end).Format(time.RFC3339Nano),
	})
}

func runMagDec(args []string) error {
	fs := flag.NewFlagSet("magdec", flag.ExitOnError)
	lon := fs.Float64("lon", 0, "site longitude (decimal degrees)")
	lat := fs.Float64("lat", 0, "site latitude (decimal degrees)")
	dateStr := fs.String("date", "", "date as YYYY-MM-DD (default today)")
	alt := fs.Float64("alt", 0, "altitude (decimal km)")
	model := fs.String("model", bgs.ModelWMM, "geomagnetic model: wmm, igrf, or bggm")
	revision := fs.String("revision", "", "model revision (default current)")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var date time.Time
	if *dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			return fmt.Errorf("parse -date: %w", err)
		}
	}

	client := bgs.NewClient(
		bgs.WithModel(*model, *revision),
		bgs.WithTimeout(*timeout),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	decl, err := client.Declination(ctx, bgs.Request{
		Lon:        *lon,
		Lat:        *lat,
		AltitudeKm: *alt,
		Date:       date,
	})
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"declination": decl})
}

func runPolar(args []string) error {
	fs := flag.NewFlagSet("polar", flag.ExitOnError)
	uStr := fs.String("u", "", "comma-separated zonal components")
	vStr := fs.String("v", "", "comma-separated meridional components")
	category := fs.String("category", "", "data type: current, wind, or wave")
	decl := fs.Float64("decl", 0, "magnetic declination correction (decimal degrees)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	u, err := parseFloats(*uStr)
	if err != nil {
		return fmt.Errorf("parse -u: %w", err)
	}
	v, err := parseFloats(*vStr)
	if err != nil {
		return fmt.Errorf("parse -v: %w", err)
	}

	speeds, directions, err := metocean.ToPolarSeries(u, v, metocean.Category(*category), *decl)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"speed": nanStrings(speeds), "direction": nanStrings(directions)})
}

func runComponents(args []string) error {
	fs := flag.NewFlagSet("components", flag.ExitOnError)
	speedStr := fs.String("speed", "", "comma-separated speeds")
	dirStr := fs.String("dir", "", "comma-separated directions (decimal degrees)")
	category := fs.String("category", "", "data type: current, wind, or wave")
	if err := fs.Parse(args); err != nil {
		return err
	}

	speeds, err := parseFloats(*speedStr)
	if err != nil {
		return fmt.Errorf("parse -speed: %w", err)
	}
	directions, err := parseFloats(*dirStr)
	if err != nil {
		return fmt.Errorf("parse -dir: %w", err)
	}

	u, v, err := metocean.ToComponentsSeries(speeds, directions, metocean.Category(*category))
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"u": nanStrings(u), "v": nanStrings(v)})
}

func runDirStats(args []string) error {
	fs := flag.NewFlagSet("dirstats", flag.ExitOnError)
	seriesStr := fs.String("series", "", "comma-separated directions; nan marks missing samples")
	if err := fs.Parse(args); err != nil {
		return err
	}

	series, err := parseFloats(*seriesStr)
	if err != nil {
		return fmt.Errorf("parse -series: %w", err)
	}

	stats := metocean.DirectionalStats(series)
	return printJSON(map[string]any{
		"mean": nanString(stats.Mean),
		"std":  nanString(stats.Std),
		"min":  nanString(stats.Min),
		"max":  nanString(stats.Max),
	})
}

// parseFloats splits a comma-separated list of numbers; "nan" (any
// case) parses to NaN.
func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// nanString keeps NaN printable, since encoding/json rejects it as a
// number.
func nanString(f float64) any {
	if math.IsNaN(f) {
		return "NaN"
	}
	return f
}

func nanStrings(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = nanString(f)
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
