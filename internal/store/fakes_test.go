package store

import (
	"reflect"

	"sokohub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRow implements pgx.Row. Scan copies vals into dest positionally, so the
// vals slice must line up with the query's column order.
type fakeRow struct {
	scanErr error
	vals    []any
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if len(dest) != len(r.vals) {
		panic("fakeRow.Scan: dest/vals length mismatch")
	}
	for i, d := range dest {
		v := reflect.ValueOf(r.vals[i])
		target := reflect.ValueOf(d).Elem()
		if !v.IsValid() {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(v)
	}
	return nil
}

// fakeRows implements pgx.Rows over a fixed list of row value slices.
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := &fakeRow{vals: r.data[r.idx]}
	r.idx++
	return row.Scan(dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func strPtr(s string) *string { return &s }

func userVals(u model.User) []any {
	return []any{u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Avatar, u.Phone, u.CreatedAt}
}

func providerVals(p model.Provider) []any {
	return []any{
		p.ID, p.OwnerID, p.Name, p.Username, p.City, p.ZipCode, p.Location,
		p.Phone, p.Email, p.Website, p.Description,
		p.Images.Encode(), p.OpeningHours.Encode(),
		p.Category, p.Subcategory, p.Address, p.IsFeatured, p.CreatedAt, p.UpdatedAt,
	}
}

func offerVals(o model.Offer) []any {
	return []any{
		o.ID, o.ProviderID, o.Name, o.Description, o.Price, o.OriginalPrice,
		o.DiscountedPrice, o.Duration, o.Category, o.Subcategory, o.Image, o.CreatedAt,
	}
}
