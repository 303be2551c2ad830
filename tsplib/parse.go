// Package tsplib - file parsing.
//
// The reader is line oriented: "KEY : VALUE" header lines set Problem
// fields, a *_SECTION keyword switches to data mode and data continues until
// the next keyword line or EOF. Unknown header keys are ignored, unknown
// sections are skipped.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	sectionNone = iota
	sectionCoords
	sectionWeights
	sectionSkip
)

// Load opens path and parses it.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse reads one problem from r and checks it for consistency.
func Parse(r io.Reader) (*Problem, error) {
	var (
		p       = &Problem{Type: TypeTSP}
		sc      = bufio.NewScanner(r)
		section = sectionNone
		lineNo  int
		seen    []bool
	)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if isKeyword(line) {
			key, value := splitHeader(line)
			switch {
			case key == "EOF":
				return p, p.finish(seen)
			case key == "NODE_COORD_SECTION":
				if p.Dimension <= 0 {
					return nil, fmt.Errorf("line %d: %w: coordinates before DIMENSION", lineNo, ErrDimension)
				}
				p.Coords = make([]Point, p.Dimension)
				seen = make([]bool, p.Dimension)
				section = sectionCoords
			case key == "EDGE_WEIGHT_SECTION":
				section = sectionWeights
			case strings.HasSuffix(key, "_SECTION"):
				section = sectionSkip
			default:
				section = sectionNone
				if err := p.setHeader(key, value); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
			}
			continue
		}

		var err error
		switch section {
		case sectionCoords:
			err = p.readCoord(line, seen)
		case sectionWeights:
			err = p.readWeights(line)
		case sectionSkip:
		default:
			err = fmt.Errorf("%w: unexpected data %q", ErrSyntax, line)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read: %w", err)
	}

	return p, p.finish(seen)
}

// isKeyword reports whether a line starts with a letter, i.e. is a header
// or section line rather than numeric data.
func isKeyword(line string) bool {
	c := line[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// splitHeader splits "KEY : VALUE" (spaces around ':' optional).
func splitHeader(line string) (string, string) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return strings.ToUpper(strings.TrimSpace(line)), ""
	}

	return strings.ToUpper(strings.TrimSpace(key)), strings.TrimSpace(value)
}

func (p *Problem) setHeader(key, value string) error {
	switch key {
	case "NAME":
		p.Name = value
	case "COMMENT":
		if p.Comment != "" {
			p.Comment += "\n"
		}
		p.Comment += value
	case "TYPE":
		p.Type = strings.ToUpper(value)
	case "DIMENSION":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: DIMENSION %q", ErrSyntax, value)
		}
		p.Dimension = n
	case "EDGE_WEIGHT_TYPE":
		p.EdgeWeightType = strings.ToUpper(value)
	case "EDGE_WEIGHT_FORMAT":
		p.EdgeWeightFormat = strings.ToUpper(value)
	}

	return nil
}

// readCoord parses "id x y".
func (p *Problem) readCoord(line string, seen []bool) error {
	f := strings.Fields(line)
	if len(f) != 3 {
		return fmt.Errorf("%w: coordinate line %q", ErrSyntax, line)
	}
	id, err := strconv.Atoi(f[0])
	if err != nil || id < 1 || id > p.Dimension {
		return fmt.Errorf("%w: node id %q with DIMENSION %d", ErrDimension, f[0], p.Dimension)
	}
	if seen[id-1] {
		return fmt.Errorf("%w: node %d listed twice", ErrSyntax, id)
	}
	x, errX := strconv.ParseFloat(f[1], 64)
	y, errY := strconv.ParseFloat(f[2], 64)
	if errX != nil || errY != nil {
		return fmt.Errorf("%w: coordinates of node %d", ErrSyntax, id)
	}
	p.Coords[id-1] = Point{X: x, Y: y}
	seen[id-1] = true

	return nil
}

// readWeights appends every number on the line; rows may wrap freely.
func (p *Problem) readWeights(line string) error {
	for _, tok := range strings.Fields(line) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("%w: edge weight %q", ErrSyntax, tok)
		}
		p.Weights = append(p.Weights, v)
	}

	return nil
}

// finish checks the header against the collected data.
func (p *Problem) finish(seen []bool) error {
	if p.Dimension <= 0 {
		return fmt.Errorf("%w: DIMENSION missing", ErrDimension)
	}
	if p.Type != TypeTSP && p.Type != TypeATSP {
		return fmt.Errorf("%w: TYPE %q", ErrUnsupported, p.Type)
	}

	switch p.EdgeWeightType {
	case WeightExplicit:
		if p.EdgeWeightFormat == "" {
			p.EdgeWeightFormat = FormatFullMatrix
		}
		if p.Type == TypeATSP && p.EdgeWeightFormat != FormatFullMatrix {
			return fmt.Errorf("%w: ATSP with %s", ErrUnsupported, p.EdgeWeightFormat)
		}
		want, err := weightCount(p.EdgeWeightFormat, p.Dimension)
		if err != nil {
			return err
		}
		if len(p.Weights) != want {
			return fmt.Errorf("%w: %s with DIMENSION %d needs %d weights, got %d",
				ErrDimension, p.EdgeWeightFormat, p.Dimension, want, len(p.Weights))
		}
	case WeightEuc2D, WeightCeil2D, WeightMan2D, WeightATT, WeightGeo:
		if p.Coords == nil {
			return fmt.Errorf("%w: %s without NODE_COORD_SECTION", ErrDimension, p.EdgeWeightType)
		}
		for i, ok := range seen {
			if !ok {
				return fmt.Errorf("%w: node %d has no coordinates", ErrDimension, i+1)
			}
		}
	default:
		return fmt.Errorf("%w: EDGE_WEIGHT_TYPE %q", ErrUnsupported, p.EdgeWeightType)
	}

	return nil
}

// weightCount is the number of EDGE_WEIGHT_SECTION entries format needs.
func weightCount(format string, n int) (int, error) {
	switch format {
	case FormatFullMatrix:
		return n * n, nil
	case FormatUpperRow, FormatLowerRow, FormatUpperCol, FormatLowerCol:
		return n * (n - 1) / 2, nil
	case FormatUpperDiagRow, FormatLowerDiagRow, FormatUpperDiagCol, FormatLowerDiagCol:
		return n * (n + 1) / 2, nil
	}

	return 0, fmt.Errorf("%w: EDGE_WEIGHT_FORMAT %q", ErrUnsupported, format)
}
