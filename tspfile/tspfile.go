package tspfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gentsp/tspga"
)

var (
	// ErrMalformed is returned for lines that are neither a KEY: VALUE
	// header, a 3-column coordinate record, nor a recognized marker.
	ErrMalformed = errors.New("tspfile: malformed input")

	// ErrMissingDimension is returned when no DIMENSION header is present.
	ErrMissingDimension = errors.New("tspfile: missing DIMENSION header")

	// ErrDimensionMismatch is returned when the declared DIMENSION disagrees
	// with the number of parsed coordinate records.
	ErrDimensionMismatch = errors.New("tspfile: dimension does not match supplied coordinates")

	// ErrDuplicateID is returned when two coordinate records share an id.
	ErrDuplicateID = errors.New("tspfile: duplicate city id")
)

// Instance is a parsed, validated TSP problem: the structured replacement
// for a raw section dictionary.
type Instance struct {
	// Name and Comment carry the corresponding headers verbatim
	// (multi-line comments are joined with newlines).
	Name    string
	Comment string

	// Dimension is the declared city count, already verified against Cities.
	Dimension int

	// Cities are the parsed coordinate records in file order.
	Cities []tspga.City
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("tspfile: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a TSP-format document from r.
//
// Rules:
//   - blank lines and section markers (NODE_COORD_SECTION) are skipped;
//   - an EOF line terminates parsing early;
//   - "KEY: VALUE" lines populate headers (repeated keys append with \n,
//     matching the reference format's multi-line COMMENT);
//   - "<id> <x> <y>" lines append a city record.
//
// Validation (all fatal, wrapped sentinels): DIMENSION present and integral,
// count match, unique ids, parsable numbers.
//
// Complexity: O(lines).
func Parse(r io.Reader) (Instance, error) {
	var (
		inst      Instance
		dimension = -1
		seen      = make(map[int]struct{})
		lineNo    int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		// Header line: KEY: VALUE (the colon may carry no surrounding space).
		if key, value, ok := strings.Cut(line, ":"); ok {
			if err := applyHeader(&inst, &dimension,
				strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
				return Instance{}, fmt.Errorf("%w: line %d: %q", err, lineNo, line)
			}

			continue
		}

		// Section markers (NODE_COORD_SECTION and friends) carry no colon
		// and no coordinates; skip them.
		if fields := strings.Fields(line); len(fields) == 1 {
			continue
		} else if len(fields) == 3 {
			city, err := parseCity(fields)
			if err != nil {
				return Instance{}, fmt.Errorf("%w: line %d: %q", ErrMalformed, lineNo, line)
			}
			if _, dup := seen[city.ID]; dup {
				return Instance{}, fmt.Errorf("%w: line %d: id %d", ErrDuplicateID, lineNo, city.ID)
			}
			seen[city.ID] = struct{}{}
			inst.Cities = append(inst.Cities, city)

			continue
		}

		return Instance{}, fmt.Errorf("%w: line %d: %q", ErrMalformed, lineNo, line)
	}
	if err := sc.Err(); err != nil {
		return Instance{}, fmt.Errorf("tspfile: %w", err)
	}

	if dimension < 0 {
		return Instance{}, ErrMissingDimension
	}
	if dimension != len(inst.Cities) {
		return Instance{}, fmt.Errorf("%w: declared %d, parsed %d",
			ErrDimensionMismatch, dimension, len(inst.Cities))
	}
	inst.Dimension = dimension

	return inst, nil
}

// applyHeader folds one KEY: VALUE pair into the instance.
func applyHeader(inst *Instance, dimension *int, key, value string) error {
	switch key {
	case "NAME":
		inst.Name = value
	case "COMMENT":
		if inst.Comment != "" {
			inst.Comment += "\n" + value
		} else {
			inst.Comment = value
		}
	case "DIMENSION":
		d, err := strconv.Atoi(value)
		if err != nil || d < 0 {
			return ErrMalformed
		}
		*dimension = d
	default:
		// Unknown headers (TYPE, EDGE_WEIGHT_TYPE, ...) are tolerated.
	}

	return nil
}

// parseCity converts a 3-column record into a City.
func parseCity(fields []string) (tspga.City, error) {
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tspga.City{}, ErrMalformed
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tspga.City{}, ErrMalformed
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tspga.City{}, ErrMalformed
	}

	return tspga.City{ID: id, X: x, Y: y}, nil
}

// WriteTour prints a result in the reference listing shape: the stabilized
// length, then the id sequence closed back to the starting city.
func WriteTour(w io.Writer, res tspga.Result) error {
	if len(res.Best) == 0 {
		return ErrMalformed
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%.4f:", res.Fitness)
	for _, c := range res.Best {
		fmt.Fprintf(&sb, " %d", c.ID)
	}
	// Close the loop explicitly for human readers.
	fmt.Fprintf(&sb, " %d\n", res.Best[0].ID)

	_, err := io.WriteString(w, sb.String())

	return err
}
