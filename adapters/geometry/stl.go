package geometry

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
	"mouldflow/internal/round"
)

// Thickness estimation bounds for the volume/area fallback. Values
// outside this window are not realistic molded walls.
const (
	estimateMinWallMm = 0.8
	estimateMaxWallMm = 15.0
)

type vec3 struct {
	X, Y, Z float64
}

func (a vec3) sub(b vec3) vec3 {
	return vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a vec3) dot(b vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a vec3) norm() float64 {
	return math.Sqrt(a.dot(a))
}

type triangle [3]vec3

// FromSTL derives a geometry summary from a binary or ASCII STL upload.
// Coordinates are taken to be millimeters with Z as the clamp
// direction. Wall thickness is estimated from the volume-to-surface
// ratio; projected area is the bounding-box footprint.
func FromSTL(data []byte) (types.GeometrySummary, error) {
	tris, err := parseSTL(data)
	if err != nil {
		return types.GeometrySummary{}, err
	}
	if len(tris) == 0 {
		return types.GeometrySummary{}, apperrors.Newf(apperrors.TypeParsing, "STL file contains no triangles")
	}

	min := tris[0][0]
	max := tris[0][0]
	volumeMm3 := 0.0
	areaMm2 := 0.0
	for _, t := range tris {
		for _, v := range t {
			min.X = math.Min(min.X, v.X)
			min.Y = math.Min(min.Y, v.Y)
			min.Z = math.Min(min.Z, v.Z)
			max.X = math.Max(max.X, v.X)
			max.Y = math.Max(max.Y, v.Y)
			max.Z = math.Max(max.Z, v.Z)
		}
		// Signed tetrahedron volume against the origin; the signs cancel
		// for a closed mesh.
		volumeMm3 += t[0].dot(t[1].cross(t[2])) / 6
		areaMm2 += t[1].sub(t[0]).cross(t[2].sub(t[0])).norm() / 2
	}
	volumeMm3 = math.Abs(volumeMm3)

	bbox := max.sub(min)
	if bbox.X <= 0 || bbox.Y <= 0 || bbox.Z <= 0 {
		return types.GeometrySummary{}, apperrors.Geometry("STL mesh is degenerate: bounding box %g × %g × %g mm", bbox.X, bbox.Y, bbox.Z)
	}
	if volumeMm3 <= 0 {
		return types.GeometrySummary{}, apperrors.Geometry("STL mesh encloses no volume; the mesh may not be watertight")
	}

	minWall, avgWall, maxWall := estimateThickness(volumeMm3, areaMm2)

	return types.GeometrySummary{
		VolumeCm3:        round.To(volumeMm3/1000, 3),
		ProjectedAreaCm2: round.ToTwo(bbox.X * bbox.Y / 100),
		SurfaceAreaCm2:   round.ToTwo(areaMm2 / 100),
		MinThicknessMm:   round.ToTwo(minWall),
		AvgThicknessMm:   round.ToTwo(avgWall),
		MaxThicknessMm:   round.ToTwo(maxWall),
		BBoxXMm:          round.ToTwo(bbox.X),
		BBoxYMm:          round.ToTwo(bbox.Y),
		BBoxZMm:          round.ToTwo(bbox.Z),
		Source:           types.SourceCAD,
	}, nil
}

// estimateThickness derives a wall thickness range from the
// volume-to-surface ratio. For a thin-walled shell, volume ≈ area/2 ×
// wall, so wall ≈ 2V/A. The spread factors bracket the typical
// variation of molded parts.
func estimateThickness(volumeMm3, areaMm2 float64) (minWall, avgWall, maxWall float64) {
	avgWall = 2.0
	if areaMm2 > 0 {
		avgWall = 2 * volumeMm3 / areaMm2
	}
	minWall = math.Max(estimateMinWallMm, avgWall*0.6)
	maxWall = math.Min(estimateMaxWallMm, avgWall*1.8)
	avgWall = math.Max(minWall, math.Min(avgWall, maxWall))
	return minWall, avgWall, maxWall
}

func parseSTL(data []byte) ([]triangle, error) {
	if len(data) < 15 {
		return nil, apperrors.Newf(apperrors.TypeParsing, "STL file too short (%d bytes)", len(data))
	}
	if isASCIISTL(data) {
		return parseASCIISTL(data)
	}
	return parseBinarySTL(data)
}

// isASCIISTL distinguishes the two formats. The "solid" prefix alone is
// not enough: some binary exporters write it into the 80-byte header,
// so the facet keyword must appear too.
func isASCIISTL(data []byte) bool {
	head := bytes.TrimLeft(data, " \t\r\n")
	if !bytes.HasPrefix(head, []byte("solid")) {
		return false
	}
	probe := data
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	return bytes.Contains(probe, []byte("facet"))
}

func parseBinarySTL(data []byte) ([]triangle, error) {
	if len(data) < 84 {
		return nil, apperrors.Newf(apperrors.TypeParsing, "binary STL header truncated (%d bytes)", len(data))
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	const recordSize = 50
	if int64(len(data)) < 84+int64(count)*recordSize {
		return nil, apperrors.Newf(apperrors.TypeParsing, "binary STL truncated: header declares %d triangles", count)
	}

	tris := make([]triangle, 0, count)
	for i := uint32(0); i < count; i++ {
		rec := data[84+int(i)*recordSize:]
		var t triangle
		for v := 0; v < 3; v++ {
			// Skip the 12-byte normal; vertices start at offset 12.
			off := 12 + v*12
			t[v] = vec3{
				X: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off:]))),
				Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off+4:]))),
				Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off+8:]))),
			}
		}
		tris = append(tris, t)
	}
	return tris, nil
}

func parseASCIISTL(data []byte) ([]triangle, error) {
	var tris []triangle
	var current []vec3

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != "vertex" {
			continue
		}
		if len(fields) != 4 {
			return nil, apperrors.Newf(apperrors.TypeParsing, "malformed vertex on line %d", line)
		}
		var v vec3
		var err error
		if v.X, err = strconv.ParseFloat(fields[1], 64); err == nil {
			if v.Y, err = strconv.ParseFloat(fields[2], 64); err == nil {
				v.Z, err = strconv.ParseFloat(fields[3], 64)
			}
		}
		if err != nil {
			return nil, apperrors.Parsing("parsing vertex on line "+strconv.Itoa(line), err)
		}
		current = append(current, v)
		if len(current) == 3 {
			tris = append(tris, triangle{current[0], current[1], current[2]})
			current = current[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Parsing("reading ASCII STL", err)
	}
	if len(current) != 0 {
		return nil, apperrors.Newf(apperrors.TypeParsing, "ASCII STL ends mid-facet")
	}
	return tris, nil
}
