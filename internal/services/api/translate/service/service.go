// Package service contains the detect then translate workflow
package service

import (
	"context"
	"strings"

	"langrelay/internal/adapters/translate"
	"langrelay/internal/core/langid"
	"langrelay/internal/platform/logger"
	detdom "langrelay/internal/services/api/detect/domain"
	"langrelay/internal/services/api/translate/domain"
)

// Translator is the remote translation seam; *translate.Chain satisfies it
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (translate.Result, error)
}

// Service defines the translate service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service
type Svc struct {
	ports  domain.Ports
	tr     Translator
	target string
}

// New constructs a translate service
func New(ports domain.Ports, tr Translator, target string) *Svc {
	if ports.Messages == nil || ports.Detector == nil {
		panic("translate.Service requires Messages and Detector ports")
	}
	if tr == nil {
		panic("translate.Service requires a non nil Translator")
	}
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		target = domain.DefaultTarget
	}
	return &Svc{ports: ports, tr: tr, target: target}
}

// Latest translates the newest stored message and persists the outcome on its row
// a row that already carries a translation is returned without remote calls
func (s *Svc) Latest(ctx context.Context) (domain.Translation, error) {
	m, err := s.ports.Messages.Latest(ctx)
	if err != nil {
		return domain.Translation{}, err
	}
	if m.Translated() {
		return domain.Translation{
			ID:             m.ID,
			Message:        m.Message,
			Lang:           *m.Lang,
			Translated:     *m.Lang != langid.Unknown,
			TranslatedText: *m.TranslatedText,
			Cached:         true,
		}, nil
	}

	res := s.ports.Detector.DetectText(ctx, m.Message, detdom.SourceTranslate)
	out, err := s.translate(ctx, m.Message, res)
	if err != nil {
		return domain.Translation{}, err
	}
	out.ID = m.ID

	// unknown stays unpersisted so a later default language can still resolve it
	if out.Translated {
		if err := s.ports.Messages.UpdateTranslation(ctx, m.ID, out.Lang, out.TranslatedText); err != nil {
			logger.C(ctx).Error().Err(err).Int64("message_id", m.ID).Msg("persist translation failed")
		}
	}
	return out, nil
}

// Translate handles an ad hoc request; a given Source skips detection
func (s *Svc) Translate(ctx context.Context, in domain.TranslateInput) (domain.Translation, error) {
	text := strings.TrimSpace(in.Text)
	var res langid.Result
	if src := strings.ToLower(strings.TrimSpace(in.Source)); src != "" {
		res = langid.Result{Lang: src, Confidence: langid.High}
	} else {
		res = s.ports.Detector.DetectText(ctx, text, detdom.SourceTranslate)
	}
	return s.translate(ctx, text, res)
}

func (s *Svc) translate(ctx context.Context, text string, res langid.Result) (domain.Translation, error) {
	out := domain.Translation{
		Message:    text,
		Lang:       res.Lang,
		Confidence: string(res.Confidence),
	}
	switch {
	case res.Lang == s.target:
		out.Translated = true
		out.TranslatedText = text
	case !res.Resolved():
		out.TranslatedText = text
	default:
		r, err := s.tr.Translate(ctx, text, res.Lang, s.target)
		if err != nil {
			return domain.Translation{}, err
		}
		out.Translated = true
		out.TranslatedText = r.Text
		out.Backend = r.Backend
	}
	return out, nil
}
