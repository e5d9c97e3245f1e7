// Package service contains detect workflows
package service

import (
	"context"
	"time"
	"unicode/utf8"

	"langrelay/internal/core/langid"
	perr "langrelay/internal/platform/errors"
	"langrelay/internal/services/api/detect/domain"
	"langrelay/internal/services/api/detect/repo"
)

// Service defines the detect service contract
type Service interface {
	domain.ServicePort
	domain.DetectorPort
}

// Svc implements Service
// Stats is nil when analytics are disabled
type Svc struct {
	det   *langid.Detector
	rec   domain.Recorder
	stats repo.Repo
	now   func() time.Time
}

// New constructs a detect service; rec and stats may be nil
func New(det *langid.Detector, rec domain.Recorder, stats repo.Repo) *Svc {
	if det == nil {
		panic("detect.Service requires a non nil Detector")
	}
	if rec == nil {
		rec = NopRecorder{}
	}
	return &Svc{det: det, rec: rec, stats: stats, now: time.Now}
}

// DefaultLang implements domain.DetectorPort
func (s *Svc) DefaultLang() string { return s.det.DefaultLang() }

// DetectText implements domain.DetectorPort
func (s *Svc) DetectText(ctx context.Context, text, source string) langid.Result {
	res := s.det.Detect(text)
	s.record(ctx, text, res, source)
	return res
}

// Detect implements domain.ServicePort; an empty text is a valid unknown result
func (s *Svc) Detect(ctx context.Context, in domain.DetectInput) (domain.Detection, error) {
	if !in.Segment {
		res := s.DetectText(ctx, in.Text, domain.SourceDetect)
		return domain.Detection{Lang: res.Lang, Confidence: res.Confidence, Method: res.Method}, nil
	}

	runs := s.det.Segment(in.Text)
	sum := langid.Summarize(runs)
	s.record(ctx, in.Text, sum, domain.SourceDetect)
	if runs == nil {
		runs = []langid.Run{}
	}
	return domain.Detection{Lang: sum.Lang, Confidence: sum.Confidence, Runs: runs}, nil
}

// Stats implements domain.ServicePort
func (s *Svc) Stats(ctx context.Context, in domain.StatsInput) ([]domain.StatRow, error) {
	if s.stats == nil {
		return nil, perr.Unavailablef("detection analytics are disabled")
	}
	if in.Days < 1 || in.Days > 365 {
		return nil, perr.WithField(perr.InvalidArgf("days must be between 1 and 365"), "days")
	}
	since := s.now().UTC().Add(-time.Duration(in.Days) * 24 * time.Hour)
	rows, err := s.stats.Stats(ctx, since)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "detection analytics query failed")
	}
	if rows == nil {
		rows = []domain.StatRow{}
	}
	return rows, nil
}

func (s *Svc) record(ctx context.Context, text string, res langid.Result, source string) {
	s.rec.Record(ctx, domain.Record{
		At:         s.now().UTC(),
		Lang:       res.Lang,
		Confidence: string(res.Confidence),
		Chars:      utf8.RuneCountInString(text),
		Source:     source,
	})
}

// Languages returns the stop-word scored language codes
func (s *Svc) Languages() []string { return s.det.Languages() }
