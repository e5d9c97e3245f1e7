// Package repo provides postgres access for messages
package repo

import (
	"context"

	"langrelay/internal/modkit/repokit"
	"langrelay/internal/platform/store"
	"langrelay/internal/services/api/messages/domain"
)

// Repo is the persistence surface for messages
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, message string) (int64, error)
	Latest(ctx context.Context) (domain.Message, error)
	UpdateTranslation(ctx context.Context, id int64, lang, translated string) error
}

type (
	// PG binds the repo to a Queryer
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const schema = `
create table if not exists messages (
	id              bigserial primary key,
	message         text not null,
	lang            text,
	translated_text text,
	created_at      timestamptz not null default now(),
	updated_at      timestamptz not null default now()
);
create index if not exists messages_created_at_idx on messages (created_at desc, id desc);
`

func (r *queries) EnsureSchema(ctx context.Context) error {
	_, err := r.q.Exec(ctx, schema)
	return err
}

func (r *queries) Insert(ctx context.Context, message string) (int64, error) {
	return store.Scalar[int64](ctx, r.q, `insert into messages (message) values ($1) returning id`, message)
}

// Latest orders by id as well so rows inserted in one transaction stay ordered
func (r *queries) Latest(ctx context.Context) (domain.Message, error) {
	const sql = `
select id, message, lang, translated_text, created_at, updated_at
from messages
order by created_at desc, id desc
limit 1
`
	return store.One(ctx, r.q, scanMessage, sql)
}

// UpdateTranslation overwrites whatever was there; last write wins
func (r *queries) UpdateTranslation(ctx context.Context, id int64, lang, translated string) error {
	const sql = `
update messages
set lang = $2, translated_text = $3, updated_at = now()
where id = $1
`
	return store.ExecOne(ctx, r.q, sql, id, lang, translated)
}

func scanMessage(row store.Row) (domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.Message, &m.Lang, &m.TranslatedText, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
