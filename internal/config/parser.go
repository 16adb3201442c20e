package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/explorer-position/internal/placement"
	"github.com/yourusername/explorer-position/internal/types"
)

var (
	// Geometry patterns accepted on the command line
	pointPattern = regexp.MustCompile(`^(-?\d+)\s*,\s*(-?\d+)$`)
	sizePattern  = regexp.MustCompile(`^(\d+)\s*[xX]\s*(\d+)$`)
	rectPattern  = regexp.MustCompile(`^(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)$`)
)

// ParsePoint parses "x,y" (e.g. "960,520" or "-1280, 360")
func ParsePoint(s string) (types.Point, error) {
	matches := pointPattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return types.Point{}, fmt.Errorf("invalid point format: %q (want x,y)", s)
	}
	x, err := parseInt32(matches[1])
	if err != nil {
		return types.Point{}, err
	}
	y, err := parseInt32(matches[2])
	if err != nil {
		return types.Point{}, err
	}
	return types.Point{X: x, Y: y}, nil
}

// ParseSize parses "WxH" (e.g. "800x600")
func ParseSize(s string) (width, height int32, err error) {
	matches := sizePattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid size format: %q (want WxH)", s)
	}
	if width, err = parseInt32(matches[1]); err != nil {
		return 0, 0, err
	}
	if height, err = parseInt32(matches[2]); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// ParseRect parses "left,top,right,bottom"
func ParseRect(s string) (types.Rect, error) {
	matches := rectPattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return types.Rect{}, fmt.Errorf("invalid rect format: %q (want left,top,right,bottom)", s)
	}
	var edges [4]int32
	for i := range edges {
		v, err := parseInt32(matches[i+1])
		if err != nil {
			return types.Rect{}, err
		}
		edges[i] = v
	}
	r := types.Rect{Left: edges[0], Top: edges[1], Right: edges[2], Bottom: edges[3]}
	if r.Left > r.Right || r.Top > r.Bottom {
		return types.Rect{}, fmt.Errorf("invalid rect %q: right/bottom before left/top", s)
	}
	return r, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate: %s", s)
	}
	return int32(v), nil
}

// ParseMargin parses a margin value from various shorthand formats
// Supported formats:
//   - 20 (number) -> both axes
//   - "20" or "20px" (string) -> both axes
//   - [120, 20] (array) -> x=120, y=20
//   - {x: 120, y: 20} (object) -> explicit per-axis
func ParseMargin(raw interface{}) (placement.Margin, error) {
	switch v := raw.(type) {
	case nil:
		return placement.Margin{}, fmt.Errorf("margin is empty")

	case placement.Margin:
		return v, nil

	case []interface{}:
		if len(v) != 2 {
			return placement.Margin{}, fmt.Errorf("margin array must have 2 values, got %d", len(v))
		}
		x, err := parseMarginValue(v[0])
		if err != nil {
			return placement.Margin{}, fmt.Errorf("margin x: %w", err)
		}
		y, err := parseMarginValue(v[1])
		if err != nil {
			return placement.Margin{}, fmt.Errorf("margin y: %w", err)
		}
		return placement.Margin{X: x, Y: y}, nil

	case map[string]interface{}:
		return parseMarginObject(v)

	default:
		n, err := parseMarginValue(v)
		if err != nil {
			return placement.Margin{}, err
		}
		return placement.Margin{X: n, Y: n}, nil
	}
}

// parseMarginValue handles int, float64 (JSON numbers) or string
func parseMarginValue(v interface{}) (int32, error) {
	switch val := v.(type) {
	case int:
		if val < math.MinInt32 || val > math.MaxInt32 {
			return 0, fmt.Errorf("margin out of range: %d", val)
		}
		return int32(val), nil
	case float64:
		if val != math.Trunc(val) {
			return 0, fmt.Errorf("margin must be a whole number of pixels: %v", val)
		}
		if val < math.MinInt32 || val > math.MaxInt32 {
			return 0, fmt.Errorf("margin out of range: %v", val)
		}
		return int32(val), nil
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(val), "px")
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid margin value: %s", val)
		}
		return int32(n), nil
	default:
		return 0, fmt.Errorf("invalid margin value type: %T", v)
	}
}

// parseMarginObject handles {x: N, y: N}
func parseMarginObject(obj map[string]interface{}) (placement.Margin, error) {
	var margin placement.Margin

	for key, val := range obj {
		n, err := parseMarginValue(val)
		if err != nil {
			return placement.Margin{}, fmt.Errorf("margin.%s: %w", key, err)
		}

		switch key {
		case "x":
			margin.X = n
		case "y":
			margin.Y = n
		default:
			return placement.Margin{}, fmt.Errorf("unknown margin key: %s", key)
		}
	}

	return margin, nil
}
