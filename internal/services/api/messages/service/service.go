// Package service contains the message workflows
package service

import (
	"context"

	"langrelay/internal/core/normalize"
	"langrelay/internal/modkit/repokit"
	perr "langrelay/internal/platform/errors"
	"langrelay/internal/platform/logger"
	"langrelay/internal/services/api/messages/domain"
	"langrelay/internal/services/api/messages/repo"
)

// Service defines the messages service contract
type Service interface {
	domain.MessagesPort
	EnsureSchema(ctx context.Context) error
}

// Svc implements Service over a bound repo
type Svc struct {
	Repo repo.Repo
}

// New constructs a messages service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("messages.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("messages.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: repokit.MustBind(binder, db)}
}

// EnsureSchema creates the messages table when missing
func (s *Svc) EnsureSchema(ctx context.Context) error {
	if err := s.Repo.EnsureSchema(ctx); err != nil {
		return perr.FromPostgres(err, "messages schema")
	}
	return nil
}

// Receive cleans raw and stores it; a blank message is a validation error
func (s *Svc) Receive(ctx context.Context, raw string) (domain.Stored, error) {
	msg := normalize.Clean(raw)
	if msg == "" {
		return domain.Stored{}, perr.WithField(perr.Validationf("No message provided"), "message")
	}
	id, err := s.Repo.Insert(ctx, msg)
	if err != nil {
		return domain.Stored{}, perr.FromPostgres(err, "store message")
	}
	logger.C(ctx).Info().Int64("message_id", id).Int("chars", len([]rune(msg))).Msg("message stored")
	return domain.Stored{ID: id, Status: domain.StoredStatus}, nil
}

// Latest returns the newest message or a NotFound error
func (s *Svc) Latest(ctx context.Context) (domain.Message, error) {
	m, err := s.Repo.Latest(ctx)
	if err != nil {
		err = perr.FromPostgres(err, "load latest message")
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Message{}, perr.NotFoundf("no message stored yet")
		}
		return domain.Message{}, err
	}
	return m, nil
}

// UpdateTranslation persists a detected language and translation by id
func (s *Svc) UpdateTranslation(ctx context.Context, id int64, lang, translated string) error {
	return perr.FromPostgres(s.Repo.UpdateTranslation(ctx, id, lang, translated), "update translation")
}
