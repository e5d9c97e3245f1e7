package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"langrelay/internal/platform/cache"
	perr "langrelay/internal/platform/errors"

	goredis "github.com/redis/go-redis/v9"
)

type setCall struct {
	key string
	val any
	ttl time.Duration
}

type fakeClient struct {
	data   map[string]string
	sets   []setCall
	dels   []string
	err    error
	closed bool
}

func (f *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	if f.err != nil {
		return goredis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value any, ttl time.Duration) *goredis.StatusCmd {
	f.sets = append(f.sets, setCall{key, value, ttl})
	if f.err == nil {
		f.data[key] = string(value.([]byte))
	}
	return goredis.NewStatusResult("OK", f.err)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	f.dels = append(f.dels, keys...)
	return goredis.NewIntResult(int64(len(keys)), f.err)
}

func (f *fakeClient) Ping(context.Context) *goredis.StatusCmd { return goredis.NewStatusResult("PONG", f.err) }
func (f *fakeClient) Close() error                            { f.closed = true; return nil }

func TestStore_PrefixAndTTL(t *testing.T) {
	fc := &fakeClient{data: map[string]string{}}
	s := newStore(fc, "lr:p:")
	ctx := context.Background()

	if err := s.Set(ctx, "abc", []byte(`{"x":1}`), 5*time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "def", []byte("y"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if fc.sets[0].key != "lr:p:abc" || fc.sets[0].ttl != 5*time.Minute {
		t.Fatalf("set call = %+v", fc.sets[0])
	}
	if fc.sets[1].ttl != cache.DefaultTTL {
		t.Fatalf("default ttl = %v", fc.sets[1].ttl)
	}

	got, ok, err := s.Get(ctx, "abc")
	if err != nil || !ok || string(got) != `{"x":1}` {
		t.Fatalf("Get = %q %v %v", got, ok, err)
	}

	if err := s.Delete(ctx, "abc"); err != nil || fc.dels[0] != "lr:p:abc" {
		t.Fatalf("Delete: %v %v", err, fc.dels)
	}
}

func TestStore_MissIsNotAnError(t *testing.T) {
	s := newStore(&fakeClient{data: map[string]string{}}, "")
	if v, ok, err := s.Get(context.Background(), "nope"); v != nil || ok || err != nil {
		t.Fatalf("Get miss = %v %v %v", v, ok, err)
	}
}

func TestStore_ErrorsAreUnavailable(t *testing.T) {
	fc := &fakeClient{data: map[string]string{}, err: errors.New("conn refused")}
	s := newStore(fc, "")
	ctx := context.Background()

	if _, _, err := s.Get(ctx, "k"); perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("Get err = %v", err)
	}
	if err := s.Set(ctx, "k", []byte("v"), time.Second); perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("Set err = %v", err)
	}
	if err := s.Delete(ctx, "k"); perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("Delete err = %v", err)
	}
	if err := s.Ping(ctx); err == nil {
		t.Fatal("Ping should fail")
	}
	_ = s.Close()
	if !fc.closed {
		t.Fatal("Close not forwarded")
	}
}

func TestOpen_EmptyAddr(t *testing.T) {
	if _, err := Open(context.Background(), Config{}); perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("err = %v", err)
	}
}
