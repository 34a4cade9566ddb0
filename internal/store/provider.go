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

const providerColumns = `id, user_id, name, username, city, zip_code, location, phone, email,
		 website, description, images, opening_hours, category, subcategory, address,
		 is_featured, created_at, updated_at`

// ProviderFilter narrows ListProviders. Category and Subcategory are exact
// matches, Search is a case-insensitive substring match on name or
// description; set fields compose with AND.
type ProviderFilter struct {
	Category    string
	Subcategory string
	Search      string
}

func scanProvider(row pgx.Row) (*model.Provider, error) {
	p := &model.Provider{}
	var rawImages, rawHours []byte
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Username,
		&p.City,
		&p.ZipCode,
		&p.Location,
		&p.Phone,
		&p.Email,
		&p.Website,
		&p.Description,
		&rawImages,
		&rawHours,
		&p.Category,
		&p.Subcategory,
		&p.Address,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	// Stored sub-documents may hold arbitrary bytes; decode tolerantly so
	// reads never fail on bad rows.
	p.Images = model.DecodeImages(rawImages)
	p.OpeningHours = model.DecodeOpeningHours(rawHours)
	return p, nil
}

func queryProviders(ctx context.Context, db database.DB, query string, args ...any) ([]model.Provider, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := []model.Provider{}
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return providers, nil
}

func ListProviders(ctx context.Context, db database.DB, f ProviderFilter) ([]model.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers`
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

	providers, err := queryProviders(ctx, db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListProviders: %w", err)
	}
	return providers, nil
}

func ListFeaturedProviders(ctx context.Context, db database.DB) ([]model.Provider, error) {
	providers, err := queryProviders(ctx, db,
		`SELECT `+providerColumns+` FROM providers WHERE is_featured = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("ListFeaturedProviders: %w", err)
	}
	return providers, nil
}

func ListProvidersByOwner(ctx context.Context, db database.DB, ownerID string) ([]model.Provider, error) {
	providers, err := queryProviders(ctx, db,
		`SELECT `+providerColumns+` FROM providers WHERE user_id = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListProvidersByOwner: %w", err)
	}
	return providers, nil
}

func GetProviderByID(ctx context.Context, db database.DB, id string) (*model.Provider, error) {
	row := db.QueryRow(ctx,
		`SELECT `+providerColumns+` FROM providers WHERE id = $1`, id)
	p, err := scanProvider(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetProviderByID: %w", err)
	}
	return p, nil
}

// CreateProvider inserts a listing. A missing ID is generated here and
// is_featured always starts false regardless of input.
func CreateProvider(ctx context.Context, db database.DB, p *model.Provider) (*model.Provider, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	row := db.QueryRow(ctx,
		`INSERT INTO providers (id, user_id, name, username, city, zip_code, location,
		   phone, email, website, description, images, opening_hours, category,
		   subcategory, address, is_featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, FALSE)
		 RETURNING is_featured, created_at, updated_at`,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Username,
		p.City,
		p.ZipCode,
		p.Location,
		p.Phone,
		p.Email,
		p.Website,
		p.Description,
		p.Images.Encode(),
		p.OpeningHours.Encode(),
		p.Category,
		p.Subcategory,
		p.Address,
	)
	if err := row.Scan(&p.IsFeatured, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProvider: %w", err)
	}
	return p, nil
}

// UpdateProvider overwrites every editable field and bumps updated_at.
// Ownership and featured status are not editable through this path.
func UpdateProvider(ctx context.Context, db database.DB, p *model.Provider) error {
	tag, err := db.Exec(ctx,
		`UPDATE providers SET name = $1, username = $2, city = $3, zip_code = $4,
		   location = $5, phone = $6, email = $7, website = $8, description = $9,
		   images = $10, opening_hours = $11, category = $12, subcategory = $13,
		   address = $14, updated_at = now()
		 WHERE id = $15`,
		p.Name,
		p.Username,
		p.City,
		p.ZipCode,
		p.Location,
		p.Phone,
		p.Email,
		p.Website,
		p.Description,
		p.Images.Encode(),
		p.OpeningHours.Encode(),
		p.Category,
		p.Subcategory,
		p.Address,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProvider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func SetProviderFeatured(ctx context.Context, db database.DB, id string, featured bool) error {
	tag, err := db.Exec(ctx,
		`UPDATE providers SET is_featured = $1 WHERE id = $2`,
		featured, id,
	)
	if err != nil {
		return fmt.Errorf("SetProviderFeatured: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProvider removes a listing. Its offers go with it through the
// ON DELETE CASCADE constraint on offers.provider_id.
func DeleteProvider(ctx context.Context, db database.DB, id string) error {
	tag, err := db.Exec(ctx, `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteProvider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
