package service

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/momhive/momhive/internal/chart"
	"github.com/momhive/momhive/internal/model"
	"github.com/momhive/momhive/internal/repository"
	"github.com/natefinch/atomic"
)

// HomeTrendLimit is how many recent entries the home page plots
const HomeTrendLimit = 5

var ErrNoMoodData = errors.New("no mood data available")

// Trend is a rendered mood chart
type Trend struct {
	Path   string // on disk
	URL    string // cache-busted, served from the static dir
	Points int
}

type MoodService struct {
	moodRepository repository.MoodRepository
	chartDir       string
	chartURL       string
}

// NewMoodService writes charts into chartDir, which is served at chartURL
func NewMoodService(moodRepository repository.MoodRepository, chartDir, chartURL string) *MoodService {
	return &MoodService{
		moodRepository: moodRepository,
		chartDir:       chartDir,
		chartURL:       chartURL,
	}
}

func (s *MoodService) Record(username string, mood int) (*model.MoodEntry, error) {
	entry := &model.MoodEntry{
		Username: username,
		Mood:     mood,
		Date:     time.Now().UTC(),
	}

	err := s.moodRepository.Create(entry)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Latest returns ErrNoMoodData when the user has not logged a mood yet
func (s *MoodService) Latest(username string) (*model.MoodEntry, error) {
	entry, err := s.moodRepository.Latest(username)
	if errors.Is(err, repository.ErrMoodNotFound) {
		return nil, ErrNoMoodData
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest mood: %w", err)
	}
	return entry, nil
}

// Entries returns the newest limit entries in chronological order, or the
// whole history when limit <= 0.
func (s *MoodService) Entries(username string, limit int) ([]*model.MoodEntry, error) {
	if limit <= 0 {
		return s.moodRepository.All(username)
	}

	entries, err := s.moodRepository.Recent(username, limit)
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	return entries, nil
}

// RenderTrend plots the user's entries and writes the PNG atomically to a
// path owned by that user and view.
func (s *MoodService) RenderTrend(username string, limit int) (*Trend, error) {
	entries, err := s.Entries(username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoMoodData
	}

	points := make([]chart.Point, len(entries))
	for i, e := range entries {
		points[i] = chart.Point{At: e.Date, Value: float64(e.Mood)}
	}

	view := "history"
	opts := chart.Options{
		Title:      username + "'s Mood Tracker Over Time",
		XLabel:     "Date",
		YLabel:     "Mood Level",
		SeriesName: "Mood Score",
		Width:      800,
		Height:     500,
	}
	if limit > 0 {
		view = "recent"
		opts = chart.Options{
			Title:      username + "'s Mood Trends",
			XLabel:     "Date",
			YLabel:     "Mood Score",
			SeriesName: "Mood Level",
			Width:      600,
			Height:     400,
		}
	}

	var buf bytes.Buffer
	err = chart.RenderPNG(&buf, points, opts)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(s.chartDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart directory: %w", err)
	}

	name := fmt.Sprintf("mood-%s-%s.png", UserKey(username), view)
	chartPath := filepath.Join(s.chartDir, name)

	err = atomic.WriteFile(chartPath, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to write chart: %w", err)
	}

	return &Trend{
		Path:   chartPath,
		URL:    path.Join(s.chartURL, name) + "?v=" + strconv.FormatInt(time.Now().UnixNano(), 36),
		Points: len(entries),
	}, nil
}

// PruneCharts removes rendered charts not rewritten within maxAge. Charts are
// re-rendered on every view, so only abandoned ones go.
func (s *MoodService) PruneCharts(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.chartDir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to list charts: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasPrefix(e.Name(), "mood-") || filepath.Ext(e.Name()) != ".png" {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		err = os.Remove(filepath.Join(s.chartDir, e.Name()))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("failed to remove chart: %w", err)
		}
		removed++
	}
	return removed, nil
}
