package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hanishin/moneyline/internal/common"
	"github.com/hanishin/moneyline/internal/model"
)

// SaveAsset inserts an asset, replacing any existing record with the same
// id.
func (s *SQLiteStorage) SaveAsset(ctx context.Context, asset *model.Asset) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if asset == nil {
		return fmt.Errorf("%w: asset", ErrNilParameter)
	}
	if err := asset.Validate(); err != nil {
		return err
	}

	var purchaseDate any
	if !asset.PurchaseDate.IsZero() {
		purchaseDate = formatDate(asset.PurchaseDate)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO assets (
			id, name, category, purchase_value, current_value,
			purchase_date, description, memo, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		asset.ID, asset.Name, string(asset.Category), asset.PurchaseValue,
		asset.CurrentValue, purchaseDate, asset.Description, asset.Memo,
		formatTimestamp(asset.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}
	return nil
}

// ListAssets returns all stored assets grouped by category, then name.
func (s *SQLiteStorage) ListAssets(ctx context.Context) ([]model.Asset, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, purchase_value, current_value,
		       purchase_date, description, memo, created_at
		FROM assets ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var assets []model.Asset
	for rows.Next() {
		var (
			asset        model.Asset
			category     string
			purchaseDate sql.NullString
			description  sql.NullString
			memo         sql.NullString
			createdAt    string
		)
		if err := rows.Scan(&asset.ID, &asset.Name, &category, &asset.PurchaseValue,
			&asset.CurrentValue, &purchaseDate, &description, &memo, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		asset.Category = model.AssetCategory(category)
		asset.Description = description.String
		asset.Memo = memo.String
		if purchaseDate.Valid && purchaseDate.String != "" {
			var d time.Time
			if d, err = parseDate(purchaseDate.String); err != nil {
				return nil, err
			}
			asset.PurchaseDate = d
		}
		if asset.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}
	return assets, nil
}

// DeleteAsset removes an asset by id.
func (s *SQLiteStorage) DeleteAsset(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("asset %s: %w", id, common.ErrNotFound)
	}
	return nil
}
