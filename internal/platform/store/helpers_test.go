package store

import (
	"context"
	"errors"
	"testing"

	perr "langrelay/internal/platform/errors"
)

type cmdTag int64

func (c cmdTag) String() string      { return "UPDATE" }
func (c cmdTag) RowsAffected() int64 { return int64(c) }

// memRows is a Rows over string values
type memRows struct {
	vals   []string
	idx    int
	err    error
	closed bool
}

func (r *memRows) Next() bool { r.idx++; return r.err == nil && r.idx <= len(r.vals) }
func (r *memRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.vals[r.idx-1]
	return nil
}
func (r *memRows) Err() error        { return r.err }
func (r *memRows) Close()            { r.closed = true }
func (r *memRows) Columns() []string { return []string{"v"} }

type valRow struct {
	v   any
	err error
}

func (r valRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch d := dest[0].(type) {
	case *int64:
		*d = r.v.(int64)
	case *string:
		*d = r.v.(string)
	}
	return nil
}

type fakeQ struct {
	tag  CommandTag
	err  error
	rows *memRows
	row  valRow
}

func (f *fakeQ) Exec(context.Context, string, ...any) (CommandTag, error) { return f.tag, f.err }
func (f *fakeQ) Query(context.Context, string, ...any) (Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}
func (f *fakeQ) QueryRow(context.Context, string, ...any) Row { return f.row }

func scanString(r Row) (string, error) {
	var s string
	err := r.Scan(&s)
	return s, err
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()
	if err := ExecOne(ctx, &fakeQ{tag: cmdTag(1)}, "x"); err != nil {
		t.Fatalf("one row: %v", err)
	}
	if err := ExecOne(ctx, &fakeQ{tag: cmdTag(0)}, "x"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("zero rows: %v", err)
	}
	if err := ExecOne(ctx, &fakeQ{tag: cmdTag(2)}, "x"); err == nil {
		t.Fatal("two rows: expected error")
	}
	boom := errors.New("boom")
	if err := ExecOne(ctx, &fakeQ{err: boom}, "x"); !errors.Is(err, boom) {
		t.Fatalf("exec error: %v", err)
	}
}

func TestScalar(t *testing.T) {
	n, err := Scalar[int64](context.Background(), &fakeQ{row: valRow{v: int64(42)}}, "SELECT count(*)")
	if err != nil || n != 42 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
	if _, err := Scalar[int64](context.Background(), &fakeQ{row: valRow{err: errors.New("scan")}}, "x"); err == nil {
		t.Fatal("expected scan error")
	}
}

func TestOne(t *testing.T) {
	ctx := context.Background()

	rows := &memRows{vals: []string{"a"}}
	got, err := One(ctx, &fakeQ{rows: rows}, scanString, "x")
	if err != nil || got != "a" || !rows.closed {
		t.Fatalf("One = %q, %v closed=%v", got, err, rows.closed)
	}

	if _, err := One(ctx, &fakeQ{rows: &memRows{}}, scanString, "x"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("no rows: %v", err)
	}
	if _, err := One(ctx, &fakeQ{rows: &memRows{vals: []string{"a", "b"}}}, scanString, "x"); err == nil {
		t.Fatal("two rows: expected error")
	}
	iterErr := errors.New("iter")
	if _, err := One(ctx, &fakeQ{rows: &memRows{err: iterErr}}, scanString, "x"); !errors.Is(err, iterErr) {
		t.Fatalf("iterator error: %v", err)
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()
	got, err := Many(ctx, &fakeQ{rows: &memRows{vals: []string{"a", "b", "c"}}}, scanString, "x")
	if err != nil || len(got) != 3 || got[2] != "c" {
		t.Fatalf("Many = %v, %v", got, err)
	}
	got, err = Many(ctx, &fakeQ{rows: &memRows{}}, scanString, "x")
	if err != nil || len(got) != 0 {
		t.Fatalf("empty Many = %v, %v", got, err)
	}
	boom := errors.New("boom")
	if _, err := Many(ctx, &fakeQ{err: boom}, scanString, "x"); !errors.Is(err, boom) {
		t.Fatalf("query error: %v", err)
	}
}
