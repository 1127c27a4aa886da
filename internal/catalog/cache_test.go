package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/velour-cloud/scentsearch/internal/domain"
)

type stubProducts struct {
	products []domain.Product
	err      error
	calls    int
}

func (s *stubProducts) Products(context.Context) ([]domain.Product, error) {
	s.calls++
	return s.products, s.err
}

type stubEntries struct {
	entries []domain.JournalEntry
	err     error
	calls   int
}

func (s *stubEntries) Entries(context.Context) ([]domain.JournalEntry, error) {
	s.calls++
	return s.entries, s.err
}

func TestCache_ProductsMissFetchesAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	inner := &stubProducts{products: []domain.Product{{ID: "p1", Title: "CK One"}}}
	cache := NewCache(client, inner, &stubEntries{}, time.Minute, "scentsearch:", zap.NewNop())

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "scentsearch:catalog:products")).
		Return(mock.Result(mock.RedisNil()))
	client.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "SET" && cmd[1] == "scentsearch:catalog:products"
		})).
		Return(mock.Result(mock.RedisString("OK")))

	products, err := cache.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Errorf("unexpected products: %+v", products)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 backend call, got %d", inner.calls)
	}
}

func TestCache_ProductsHitSkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	payload, err := json.Marshal([]domain.Product{{ID: "p2", Title: "Good Girl"}})
	if err != nil {
		t.Fatal(err)
	}

	inner := &stubProducts{}
	cache := NewCache(client, inner, &stubEntries{}, time.Minute, "scentsearch:", zap.NewNop())

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "scentsearch:catalog:products")).
		Return(mock.Result(mock.RedisString(string(payload))))

	products, err := cache.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].Title != "Good Girl" {
		t.Errorf("unexpected products: %+v", products)
	}
	if inner.calls != 0 {
		t.Errorf("backend should not be called on a hit, got %d calls", inner.calls)
	}
}

func TestCache_CorruptPayloadFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	inner := &stubProducts{products: []domain.Product{{ID: "p3"}}}
	cache := NewCache(client, inner, &stubEntries{}, time.Minute, "scentsearch:", zap.NewNop())

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "scentsearch:catalog:products")).
		Return(mock.Result(mock.RedisString("not json")))
	client.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool { return cmd[0] == "SET" })).
		Return(mock.Result(mock.RedisString("OK")))

	products, err := cache.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || inner.calls != 1 {
		t.Errorf("expected backend fetch after corrupt payload, got %+v (calls=%d)", products, inner.calls)
	}
}

func TestCache_StoreFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	inner := &stubEntries{entries: []domain.JournalEntry{{ID: "j1"}}}
	cache := NewCache(client, &stubProducts{}, inner, time.Minute, "scentsearch:", zap.NewNop())

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "scentsearch:content:journal")).
		Return(mock.Result(mock.RedisNil()))
	client.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool { return cmd[0] == "SET" })).
		Return(mock.ErrorResult(errors.New("connection reset")))

	entries, err := cache.Entries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "j1" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestCache_BackendErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)

	inner := &stubProducts{err: domain.ErrCatalogUnavailable}
	cache := NewCache(client, inner, &stubEntries{}, time.Minute, "scentsearch:", zap.NewNop())

	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "scentsearch:catalog:products")).
		Return(mock.Result(mock.RedisNil()))

	_, err := cache.Products(context.Background())
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
}
