package easel

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// skipCommaWhitespace skips SVG path separators.
func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// MustParsePath is like ParsePath but panics on a parse error.
func MustParsePath(data string) Path {
	p, err := ParsePath(data)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePath parses SVG path data into a Path shape. It supports the moveto
// (M), lineto (L, H, V), cubic (C, S) and quadratic (Q, T) commands in both
// absolute and relative form. A closepath (Z) becomes a line back to the
// start of the current subpath, since the segment model has no close
// primitive. Elliptical arcs (A) are not representable and return an error.
func ParsePath(data string) (Path, error) {
	b := []byte(data)
	var path Path
	started := false

	var pos, start, cp Point
	var prevCmd byte

	i := skipCommaWhitespace(b)
	num := func() (float64, error) {
		i += skipCommaWhitespace(b[i:])
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return 0.0, fmt.Errorf("bad number at position %d", i)
		}
		i += n
		return f, nil
	}
	pair := func(rel bool) (Point, error) {
		x, err := num()
		if err != nil {
			return Point{}, err
		}
		y, err := num()
		if err != nil {
			return Point{}, err
		}
		if rel {
			return pos.Add(Point{x, y}), nil
		}
		return Point{x, y}, nil
	}

	for i < len(b) {
		cmd, cmdPos := prevCmd, i
		explicit := 'A' <= b[i] && b[i] <= 'z'
		if explicit {
			cmd = b[i]
			i++
		}
		if !started && cmd != 'M' && cmd != 'm' {
			return Path{}, fmt.Errorf("path must begin with a moveto command")
		}
		// closepath takes no coordinates, so it cannot repeat implicitly
		if !explicit && (cmd == 'Z' || cmd == 'z') {
			return Path{}, fmt.Errorf("unexpected character after closepath at position %d", i)
		}
		rel := 'a' <= cmd && cmd <= 'z'
		switch cmd {
		case 'M', 'm':
			p, err := pair(rel)
			if err != nil {
				return Path{}, err
			}
			if !started {
				path.Start = p
				started = true
			} else {
				path.Segments = append(path.Segments, MoveTo{p})
			}
			start, pos = p, p
			// subsequent implicit pairs are linetos
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'Z', 'z':
			path.Segments = append(path.Segments, LineTo{start})
			pos = start
		case 'L', 'l':
			p, err := pair(rel)
			if err != nil {
				return Path{}, err
			}
			path.Segments = append(path.Segments, LineTo{p})
			pos = p
		case 'H', 'h':
			x, err := num()
			if err != nil {
				return Path{}, err
			}
			if rel {
				x += pos.X
			}
			pos = Point{x, pos.Y}
			path.Segments = append(path.Segments, LineTo{pos})
		case 'V', 'v':
			y, err := num()
			if err != nil {
				return Path{}, err
			}
			if rel {
				y += pos.Y
			}
			pos = Point{pos.X, y}
			path.Segments = append(path.Segments, LineTo{pos})
		case 'C', 'c', 'S', 's':
			var cp1 Point
			if cmd == 'C' || cmd == 'c' {
				p, err := pair(rel)
				if err != nil {
					return Path{}, err
				}
				cp1 = p
			} else {
				// reflect the previous control point for smooth curves
				cp1 = pos
				if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
					cp1 = pos.Mul(2.0).Sub(cp)
				}
			}
			cp2, err := pair(rel)
			if err != nil {
				return Path{}, err
			}
			end, err := pair(rel)
			if err != nil {
				return Path{}, err
			}
			path.Segments = append(path.Segments, BezierCurveTo{cp1, cp2, end})
			cp, pos = cp2, end
		case 'Q', 'q', 'T', 't':
			var cp1 Point
			if cmd == 'Q' || cmd == 'q' {
				p, err := pair(rel)
				if err != nil {
					return Path{}, err
				}
				cp1 = p
			} else {
				cp1 = pos
				if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
					cp1 = pos.Mul(2.0).Sub(cp)
				}
			}
			end, err := pair(rel)
			if err != nil {
				return Path{}, err
			}
			path.Segments = append(path.Segments, QuadraticCurveTo{cp1, end})
			cp, pos = cp1, end
		case 'A', 'a':
			return Path{}, fmt.Errorf("elliptical arc segments are not supported")
		default:
			return Path{}, fmt.Errorf("unknown command %q at position %d", cmd, cmdPos)
		}
		prevCmd = cmd
		i += skipCommaWhitespace(b[i:])
	}
	return path, nil
}
