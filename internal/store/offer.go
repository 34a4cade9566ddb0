package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sokohub/internal/database"
	"sokohub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const offerColumns = `id, provider_id, name, description, price, original_price,
		 discounted_price, duration, category, subcategory, image, created_at`

// OfferFilter mirrors ProviderFilter for the offers listing.
type OfferFilter struct {
	Category    string
	Subcategory string
	Search      string
}

func scanOffer(row pgx.Row) (*model.Offer, error) {
	o := &model.Offer{}
	if err := row.Scan(
		&o.ID,
		&o.ProviderID,
		&o.Name,
		&o.Description,
		&o.Price,
		&o.OriginalPrice,
		&o.DiscountedPrice,
		&o.Duration,
		&o.Category,
		&o.Subcategory,
		&o.Image,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	return o, nil
}

func ListOffers(ctx context.Context, db database.DB, f OfferFilter) ([]model.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers`
	var conds []string
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Subcategory != "" {
		args = append(args, f.Subcategory)
		conds = append(conds, fmt.Sprintf("subcategory = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListOffers: %w", err)
	}
	defer rows.Close()

	offers := []model.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("ListOffers: %w", err)
		}
		offers = append(offers, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListOffers: %w", err)
	}
	return offers, nil
}

func GetOfferByID(ctx context.Context, db database.DB, id string) (*model.Offer, error) {
	row := db.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	o, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetOfferByID: %w", err)
	}
	return o, nil
}

func providerExists(ctx context.Context, db database.DB, providerID string) (bool, error) {
	var one int
	err := db.QueryRow(ctx, `SELECT 1 FROM providers WHERE id = $1`, providerID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateOffer checks the provider reference before writing; a dangling
// provider_id never reaches the insert.
func CreateOffer(ctx context.Context, db database.DB, o *model.Offer) (*model.Offer, error) {
	ok, err := providerExists(ctx, db, o.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("CreateOffer: %w", err)
	}
	if !ok {
		return nil, ErrInvalidReference
	}

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	row := db.QueryRow(ctx,
		`INSERT INTO offers (id, provider_id, name, description, price, original_price,
		   discounted_price, duration, category, subcategory, image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at`,
		o.ID,
		o.ProviderID,
		o.Name,
		o.Description,
		o.Price,
		o.OriginalPrice,
		o.DiscountedPrice,
		o.Duration,
		o.Category,
		o.Subcategory,
		o.Image,
	)
	if err := row.Scan(&o.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("CreateOffer: %w", err)
	}
	return o, nil
}

func UpdateOffer(ctx context.Context, db database.DB, o *model.Offer) error {
	ok, err := providerExists(ctx, db, o.ProviderID)
	if err != nil {
		return fmt.Errorf("UpdateOffer: %w", err)
	}
	if !ok {
		return ErrInvalidReference
	}

	tag, err := db.Exec(ctx,
		`UPDATE offers SET provider_id = $1, name = $2, description = $3, price = $4,
		   original_price = $5, discounted_price = $6, duration = $7, category = $8,
		   subcategory = $9, image = $10
		 WHERE id = $11`,
		o.ProviderID,
		o.Name,
		o.Description,
		o.Price,
		o.OriginalPrice,
		o.DiscountedPrice,
		o.Duration,
		o.Category,
		o.Subcategory,
		o.Image,
		o.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		return fmt.Errorf("UpdateOffer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteOffer(ctx context.Context, db database.DB, id string) error {
	tag, err := db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteOffer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
