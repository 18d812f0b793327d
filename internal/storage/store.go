package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/palette"
	"github.com/san-kum/polyview/internal/render"
)

var ErrNotFound = errors.New("storage: snapshot not found")

var polygonHeader = []string{"polygon", "vertex", "x", "y", "fill", "alpha", "intensity", "depth"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// SnapshotMetadata describes one saved frame.
type SnapshotMetadata struct {
	ID        string             `json:"id"`
	Shape     string             `json:"shape"`
	Params    mesh.Params        `json:"params"`
	Rotation  geom.Rotation      `json:"rotation"`
	Theme     string             `json:"theme"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Faces     int                `json:"faces"`
	Timestamp time.Time          `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes frame under a fresh id: metadata.json plus polygons.csv with
// one row per vertex.
func (s *Store) Save(scene render.Scene, frame render.Frame) (string, error) {
	id := uuid.NewString()
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SnapshotMetadata{
		ID:        id,
		Shape:     scene.Kind.String(),
		Params:    scene.Params,
		Rotation:  scene.Rotation,
		Theme:     scene.Palette.Name,
		Width:     frame.Width,
		Height:    frame.Height,
		Faces:     len(frame.Polygons),
		Timestamp: time.Now(),
		Metrics:   FrameMetrics(frame),
	}

	if err := writeSnapshot(dir, meta, frame); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("storage: save %s: %w", id, err)
	}
	return id, nil
}

func writeSnapshot(dir string, meta SnapshotMetadata, frame render.Frame) error {
	if err := writeMetadata(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return err
	}
	return writePolygons(filepath.Join(dir, "polygons.csv"), frame)
}

func writeMetadata(path string, meta SnapshotMetadata) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writePolygons(path string, frame render.Frame) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(polygonHeader); err != nil {
		return err
	}
	for i, p := range frame.Polygons {
		for j, pt := range p.Points {
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				formatFloat(pt.X),
				formatFloat(pt.Y),
				p.Fill.Clamped().Hex(),
				formatFloat(p.Fill.A),
				formatFloat(p.Intensity),
				formatFloat(p.Depth),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// FrameMetrics summarises a frame: depth range and mean intensity.
func FrameMetrics(frame render.Frame) map[string]float64 {
	m := map[string]float64{"polygons": float64(len(frame.Polygons))}
	if len(frame.Polygons) == 0 {
		return m
	}
	minZ, maxZ, sum := frame.Polygons[0].Depth, frame.Polygons[0].Depth, 0.0
	for _, p := range frame.Polygons {
		minZ = min(minZ, p.Depth)
		maxZ = max(maxZ, p.Depth)
		sum += p.Intensity
	}
	m["depth_min"] = minZ
	m["depth_max"] = maxZ
	m["intensity_mean"] = sum / float64(len(frame.Polygons))
	return m
}

// List returns every readable snapshot, newest first.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, err
	}

	snaps := make([]SnapshotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}
	sort.SliceStable(snaps, func(i, j int) bool {
		return snaps[i].Timestamp.After(snaps[j].Timestamp)
	})
	return snaps, nil
}

func (s *Store) Load(id string) (*SnapshotMetadata, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPolygons reads back the polygons of a snapshot in draw order. Outline
// data is not stored.
func (s *Store) LoadPolygons(id string) ([]render.Polygon, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	file, err := os.Open(filepath.Join(s.baseDir, id, "polygons.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(polygonHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []render.Polygon{}, nil
	}

	polys := make([]render.Polygon, 0)
	for line, rec := range records[1:] {
		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("storage: polygons.csv line %d: %w", line+2, err)
		}
		nums, err := parseFloats(rec[2], rec[3], rec[5], rec[6], rec[7])
		if err != nil {
			return nil, fmt.Errorf("storage: polygons.csv line %d: %w", line+2, err)
		}
		if idx == len(polys) {
			fill, err := palette.Hex(rec[4], nums[2])
			if err != nil {
				return nil, fmt.Errorf("storage: polygons.csv line %d: %w", line+2, err)
			}
			polys = append(polys, render.Polygon{Fill: fill, Intensity: nums[3], Depth: nums[4]})
		} else if idx != len(polys)-1 {
			return nil, fmt.Errorf("storage: polygons.csv line %d: polygon %d out of order", line+2, idx)
		}
		p := &polys[idx]
		p.Points = append(p.Points, geom.Point2D{X: nums[0], Y: nums[1]})
	}
	return polys, nil
}

func parseFloats(fields ...string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
