package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/JacksonGuy/go-whitted-raytracer/pkg/core"
)

// LoadPPM loads a PPM image in text (P3) or binary (P6) form. Comment
// lines starting with '#' are allowed anywhere in the header.
func LoadPPM(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPM file: %w", err)
	}
	defer file.Close()

	return DecodePPM(bufio.NewReader(file))
}

// DecodePPM decodes PPM data from r
func DecodePPM(r *bufio.Reader) (*ImageData, error) {
	magic, err := nextPPMToken(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM magic number: %w", err)
	}
	if magic != "P3" && magic != "P6" {
		return nil, fmt.Errorf("unsupported PPM magic number %q", magic)
	}

	width, err := nextPPMInt(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM width: %w", err)
	}
	height, err := nextPPMInt(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM height: %w", err)
	}
	maxVal, err := nextPPMInt(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM max value: %w", err)
	}
	if width <= 0 || height <= 0 || maxVal <= 0 {
		return nil, fmt.Errorf("invalid PPM header: %dx%d max %d", width, height, maxVal)
	}

	pixels := make([]core.Vec3, width*height)
	scale := 1.0 / float64(maxVal)

	if magic == "P3" {
		for i := range pixels {
			rv, err := nextPPMInt(r)
			if err != nil {
				return nil, fmt.Errorf("failed to read PPM pixel %d: %w", i, err)
			}
			gv, err := nextPPMInt(r)
			if err != nil {
				return nil, fmt.Errorf("failed to read PPM pixel %d: %w", i, err)
			}
			bv, err := nextPPMInt(r)
			if err != nil {
				return nil, fmt.Errorf("failed to read PPM pixel %d: %w", i, err)
			}
			pixels[i] = core.NewVec3(float64(rv)*scale, float64(gv)*scale, float64(bv)*scale)
		}
	} else {
		if maxVal > 255 {
			return nil, fmt.Errorf("16-bit binary PPM not supported (max value %d)", maxVal)
		}
		raw := make([]byte, width*height*3)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, fmt.Errorf("failed to read PPM pixel data: %w", err)
		}
		for i := range pixels {
			pixels[i] = core.NewVec3(
				float64(raw[i*3])*scale,
				float64(raw[i*3+1])*scale,
				float64(raw[i*3+2])*scale,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// nextPPMToken skips whitespace and '#' comments, then reads one token.
// A single whitespace byte terminates the token, which is also how the
// binary pixel block is delimited after the max value.
func nextPPMToken(r *bufio.Reader) (string, error) {
	var token []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			return "", err
		}

		switch {
		case b == '#' && len(token) == 0:
			if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

func nextPPMInt(r *bufio.Reader) (int, error) {
	token, err := nextPPMToken(r)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", token)
	}
	return n, nil
}
