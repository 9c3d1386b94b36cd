package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/freehand"
)

var errEmptyTrace = errors.New("trace contains no points")

// jsonPoint accepts both [x, y] pairs and {"x": x, "y": y} objects.
type jsonPoint freehand.Point

func (p *jsonPoint) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("point has %d coordinates, want 2", len(pair))
		}
		*p = jsonPoint{X: pair[0], Y: pair[1]}
		return nil
	}
	var obj struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	if obj.X == nil || obj.Y == nil {
		return fmt.Errorf("point %s lacks a coordinate", b)
	}
	*p = jsonPoint{X: *obj.X, Y: *obj.Y}
	return nil
}

// readTrace reads a pointer trace. JSON input is either an array of points or
// an object with a "points" array. Any other input is read as text with one
// point per line, its coordinates separated by white space or a comma. Blank
// lines and lines starting with # are ignored.
func readTrace(r io.Reader) ([]freehand.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var points []freehand.Point
	switch trimmed := bytes.TrimSpace(data); {
	case len(trimmed) == 0:
	case trimmed[0] == '[' || trimmed[0] == '{':
		points, err = parseJSONTrace(trimmed)
	default:
		points, err = parseTextTrace(trimmed)
	}
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errEmptyTrace
	}
	return points, nil
}

func parseJSONTrace(data []byte) ([]freehand.Point, error) {
	var raw []jsonPoint
	if data[0] == '{' {
		var doc struct {
			Points []jsonPoint `json:"points"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON trace: %w", err)
		}
		raw = doc.Points
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON trace: %w", err)
	}
	points := make([]freehand.Point, len(raw))
	for i, p := range raw {
		points[i] = freehand.Point(p)
	}
	return points, nil
}

func parseTextTrace(data []byte) ([]freehand.Point, error) {
	var points []freehand.Point
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: got %d fields, want 2", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, freehand.Pt(x, y))
	}
	return points, sc.Err()
}
