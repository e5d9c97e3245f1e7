package service

import (
	"context"
	"errors"
	"testing"

	perr "langrelay/internal/platform/errors"
	"langrelay/internal/platform/testkit"
	"langrelay/internal/services/api/messages/domain"
	"langrelay/internal/services/api/messages/repo"

	"github.com/jackc/pgx/v5"
)

type fakeRepo struct {
	rows      []domain.Message
	insertErr error
	latestErr error
	schema    int
}

func (f *fakeRepo) EnsureSchema(context.Context) error { f.schema++; return nil }

func (f *fakeRepo) Insert(_ context.Context, msg string) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	id := int64(len(f.rows) + 1)
	f.rows = append(f.rows, domain.Message{ID: id, Message: msg})
	return id, nil
}

func (f *fakeRepo) Latest(context.Context) (domain.Message, error) {
	if f.latestErr != nil {
		return domain.Message{}, f.latestErr
	}
	if len(f.rows) == 0 {
		return domain.Message{}, pgx.ErrNoRows
	}
	return f.rows[len(f.rows)-1], nil
}

func (f *fakeRepo) UpdateTranslation(_ context.Context, id int64, lang, tr string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Lang, f.rows[i].TranslatedText = &lang, &tr
			return nil
		}
	}
	return perr.ErrNotFound
}

func newSvc(f *fakeRepo) *Svc { return &Svc{Repo: f} }

var _ repo.Repo = (*fakeRepo)(nil)

func TestReceive(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		stored string
		code   perr.ErrorCode
	}{
		{"plain", "  Der Hund ist müde \n", "Der Hund ist müde", 0},
		{"keeps line breaks", "one\r\ntwo", "one\ntwo", 0},
		{"strips zero width", "hi\u200b there", "hi there", 0},
		{"empty", "", "", perr.ErrorCodeValidation},
		{"only whitespace", " \t\n ", "", perr.ErrorCodeValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeRepo{}
			out, err := newSvc(f).Receive(context.Background(), tc.raw)
			if tc.code != 0 {
				if perr.CodeOf(err) != tc.code {
					t.Fatalf("code = %v, want %v", perr.CodeOf(err), tc.code)
				}
				testkit.MustContain(t, err.Error(), "No message provided")
				if len(f.rows) != 0 {
					t.Fatal("rejected message was stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if out.ID != 1 || out.Status != domain.StoredStatus {
				t.Fatalf("out = %+v", out)
			}
			if f.rows[0].Message != tc.stored {
				t.Fatalf("stored %q, want %q", f.rows[0].Message, tc.stored)
			}
		})
	}
}

func TestReceive_DBError(t *testing.T) {
	f := &fakeRepo{insertErr: errors.New("conn reset")}
	_, err := newSvc(f).Receive(context.Background(), "hello")
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}

func TestLatest(t *testing.T) {
	f := &fakeRepo{}
	s := newSvc(f)
	if _, err := s.Latest(context.Background()); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("empty store err = %v", err)
	}

	_, _ = s.Receive(context.Background(), "first")
	_, _ = s.Receive(context.Background(), "second")
	m, err := s.Latest(context.Background())
	if err != nil || m.Message != "second" {
		t.Fatalf("latest = %+v err=%v", m, err)
	}
	if m.Translated() {
		t.Fatal("fresh message reports a translation")
	}

	f.latestErr = errors.New("boom")
	if _, err := s.Latest(context.Background()); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("db err = %v", err)
	}
}

func TestUpdateTranslation(t *testing.T) {
	f := &fakeRepo{}
	s := newSvc(f)
	st, _ := s.Receive(context.Background(), "Der Hund")

	if err := s.UpdateTranslation(context.Background(), st.ID, "de", "The dog"); err != nil {
		t.Fatalf("err: %v", err)
	}
	// last write wins
	if err := s.UpdateTranslation(context.Background(), st.ID, "de", "The hound"); err != nil {
		t.Fatalf("err: %v", err)
	}
	m, _ := s.Latest(context.Background())
	if !m.Translated() || *m.TranslatedText != "The hound" {
		t.Fatalf("row = %+v", m)
	}

	if err := s.UpdateTranslation(context.Background(), 99, "de", "x"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing id err = %v", err)
	}
}

func TestNew_Guards(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, repo.NewPG()) })
}

func TestEnsureSchema(t *testing.T) {
	f := &fakeRepo{}
	if err := newSvc(f).EnsureSchema(context.Background()); err != nil || f.schema != 1 {
		t.Fatalf("err=%v calls=%d", err, f.schema)
	}
}
