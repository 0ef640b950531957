package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/vearutop/prophoto"
	"github.com/vearutop/prophoto/dslr"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "curve":
		if err := runCurve(os.Args[2:]); err != nil {
			fail(err)
		}
	case "camera":
		if err := runCamera(os.Args[2:]); err != nil {
			fail(err)
		}
	case "cameras":
		for _, name := range dslr.Names() {
			fmt.Fprintln(os.Stdout, name)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: prophototool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  curve   -name romm|rimm|erimm [-decode] [-bit-depth 8] [-int] [-e-clip N] [-e-min N] value...")
	fmt.Fprintln(os.Stderr, "  camera  -name \"Nikon 5100 (NPL)\"   (CSV spectral sensitivities on stdout)")
	fmt.Fprintln(os.Stderr, "  cameras")
}

func runCurve(args []string) error {
	fs := flag.NewFlagSet("curve", flag.ContinueOnError)
	name := fs.String("name", "", "curve family: romm, prophoto, rimm or erimm")
	decode := fs.Bool("decode", false, "apply the electro-optical (decoding) direction")
	bitDepth := fs.Int("bit-depth", 8, "code value bit depth")
	intCodes := fs.Bool("int", false, "use integer code values")
	eClip := fs.Float64("e-clip", 0, "maximum exposure level (rimm, erimm)")
	eMin := fs.Float64("e-min", 0, "minimum exposure limit (erimm)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || fs.NArg() == 0 {
		return errors.New("missing required arguments")
	}

	opts := []prophoto.CurveOption{prophoto.WithBitDepth(*bitDepth)}
	if *intCodes {
		opts = append(opts, prophoto.WithIntCodes())
	}
	if *eClip > 0 {
		opts = append(opts, prophoto.WithEClip(*eClip))
	}
	if *eMin > 0 {
		opts = append(opts, prophoto.WithEMin(*eMin))
	}

	fn, err := curveFunc(*name, *decode)
	if err != nil {
		return err
	}
	for _, arg := range fs.Args() {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("value %q: %w", arg, err)
		}
		v, err := fn(x, opts...)
		if err != nil {
			return err
		}
		if *intCodes && !*decode {
			fmt.Fprintf(os.Stdout, "%d\n", int64(v))
			continue
		}
		fmt.Fprintf(os.Stdout, "%.12g\n", v)
	}
	return nil
}

func curveFunc(name string, decode bool) (func(float64, ...prophoto.CurveOption) (float64, error), error) {
	switch name {
	case "romm", "prophoto":
		if decode {
			return prophoto.EotfROMMRGB, nil
		}
		return prophoto.OetfROMMRGB, nil
	case "rimm":
		if decode {
			return prophoto.EotfRIMMRGB, nil
		}
		return prophoto.OetfRIMMRGB, nil
	case "erimm":
		if decode {
			return prophoto.LogDecodingERIMMRGB, nil
		}
		return prophoto.LogEncodingERIMMRGB, nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}

func runCamera(args []string) error {
	fs := flag.NewFlagSet("camera", flag.ContinueOnError)
	name := fs.String("name", "", "camera display name (case-insensitive)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("missing required arguments")
	}
	cam, err := dslr.ByName(*name)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "wavelength,red,green,blue")
	wl := cam.Red.Wavelengths()
	for _, w := range wl {
		r, _ := cam.Red.Value(w)
		g, _ := cam.Green.Value(w)
		b, _ := cam.Blue.Value(w)
		fmt.Fprintf(os.Stdout, "%g,%.12g,%.12g,%.12g\n", w, r, g, b)
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
