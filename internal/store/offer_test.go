package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"sokohub/internal/database"
	"sokohub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func sampleOffer(now time.Time) model.Offer {
	return model.Offer{
		ID:              "offer-1",
		ProviderID:      "prov-1",
		Name:            "Lunch special",
		Description:     strPtr("Two courses"),
		Price:           9.99,
		OriginalPrice:   14.99,
		DiscountedPrice: 9.99,
		Duration:        60,
		Category:        "Food",
		Subcategory:     "Catering",
		Image:           strPtr("/uploads/1-lunch.jpg"),
		CreatedAt:       now,
	}
}

func TestListOffers(t *testing.T) {
	now := time.Now().UTC()
	sample := sampleOffer(now)

	t.Run("no filter", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.NotContains(t, sql, "WHERE")
				require.Empty(t, args)
				return &fakeRows{data: [][]any{offerVals(sample)}}, nil
			},
		}
		got, err := ListOffers(context.Background(), p, OfferFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, sample.Price, got[0].Price)
	})

	t.Run("search filter", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "(name ILIKE $1 OR description ILIKE $1)")
				require.Equal(t, []any{"%lunch%"}, args)
				return &fakeRows{}, nil
			},
		}
		got, err := ListOffers(context.Background(), p, OfferFilter{Search: "lunch"})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("query err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ListOffers(context.Background(), p, OfferFilter{})
		require.Error(t, err)
	})
}

func TestGetOfferByID(t *testing.T) {
	now := time.Now().UTC()
	sample := sampleOffer(now)

	t.Run("ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{vals: offerVals(sample)}
			},
		}
		got, err := GetOfferByID(context.Background(), p, "offer-1")
		require.NoError(t, err)
		require.Equal(t, sample.ProviderID, got.ProviderID)
	})

	t.Run("not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetOfferByID(context.Background(), p, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateOffer(t *testing.T) {
	now := time.Now().UTC()
	sample := sampleOffer(now)

	t.Run("ok", func(t *testing.T) {
		calls := 0
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				calls++
				if calls == 1 {
					require.Contains(t, sql, "SELECT 1 FROM providers")
					return &fakeRow{vals: []any{1}}
				}
				require.Contains(t, sql, "INSERT INTO offers")
				return &fakeRow{vals: []any{now}}
			},
		}
		o := sample
		o.ID = ""
		got, err := CreateOffer(context.Background(), p, &o)
		require.NoError(t, err)
		require.NotEmpty(t, got.ID)
		require.Equal(t, now, got.CreatedAt)
		require.Equal(t, 2, calls)
	})

	t.Run("unknown provider rejected before insert", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				require.Contains(t, sql, "SELECT 1 FROM providers")
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		o := sample
		_, err := CreateOffer(context.Background(), p, &o)
		require.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("fk violation maps to invalid reference", func(t *testing.T) {
		calls := 0
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				calls++
				if calls == 1 {
					return &fakeRow{vals: []any{1}}
				}
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23503"}}
			},
		}
		o := sample
		_, err := CreateOffer(context.Background(), p, &o)
		require.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestUpdateDeleteOffer(t *testing.T) {
	now := time.Now().UTC()
	sample := sampleOffer(now)

	t.Run("update ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{vals: []any{1}}
			},
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		o := sample
		require.NoError(t, UpdateOffer(context.Background(), p, &o))
	})

	t.Run("update unknown provider", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		o := sample
		require.ErrorIs(t, UpdateOffer(context.Background(), p, &o), ErrInvalidReference)
	})

	t.Run("update not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{vals: []any{1}}
			},
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		o := sample
		require.ErrorIs(t, UpdateOffer(context.Background(), p, &o), ErrNotFound)
	})

	t.Run("delete ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteOffer(context.Background(), p, "offer-1"))
	})

	t.Run("delete not found", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteOffer(context.Background(), p, "missing"), ErrNotFound)
	})
}
