package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gastos/internal/domain/category"
)

type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, params category.CreateParams) (*category.Category, error) {
	query := `
		INSERT INTO categories (id, name, emoji, color, type, budget_limit)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, emoji, color, type, budget_limit, is_archived, created_at
	`

	var c category.Category
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.Name, params.Emoji, params.Color, params.Type, params.BudgetLimit,
	).Scan(
		&c.ID, &c.Name, &c.Emoji, &c.Color, &c.Type, &c.BudgetLimit,
		&c.Archived, &c.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*category.Category, error) {
	query := `
		SELECT id, name, emoji, color, type, budget_limit, is_archived, created_at
		FROM categories
		WHERE id = $1
	`

	var c category.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Emoji, &c.Color, &c.Type, &c.BudgetLimit,
		&c.Archived, &c.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, category.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context, includeArchived bool) ([]*category.Category, error) {
	query := `
		SELECT id, name, emoji, color, type, budget_limit, is_archived, created_at
		FROM categories
	`
	if !includeArchived {
		query += ` WHERE is_archived = FALSE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		var c category.Category
		err := rows.Scan(
			&c.ID, &c.Name, &c.Emoji, &c.Color, &c.Type, &c.BudgetLimit,
			&c.Archived, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, id string, params category.UpdateParams) (*category.Category, error) {
	// ClearBudget ($5) nulls the limit outright; otherwise a nil
	// BudgetLimit keeps the stored value through COALESCE.
	query := `
		UPDATE categories
		SET name = COALESCE($1, name),
		    emoji = COALESCE($2, emoji),
		    color = COALESCE($3, color),
		    type = COALESCE($4, type),
		    budget_limit = CASE WHEN $5 THEN NULL ELSE COALESCE($6, budget_limit) END,
		    is_archived = COALESCE($7, is_archived)
		WHERE id = $8
		RETURNING id, name, emoji, color, type, budget_limit, is_archived, created_at
	`

	var c category.Category
	err := r.db.QueryRowContext(
		ctx, query,
		params.Name, params.Emoji, params.Color, params.Type, params.ClearBudget, params.BudgetLimit, params.Archived, id,
	).Scan(
		&c.ID, &c.Name, &c.Emoji, &c.Color, &c.Type, &c.BudgetLimit,
		&c.Archived, &c.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, category.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &c, nil
}

// Archive hides the category from listings; transactions keep pointing at it.
// Archiving an already archived category is a no-op.
func (r *CategoryRepository) Archive(ctx context.Context, id string) error {
	query := `UPDATE categories SET is_archived = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to archive category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check archive result: %w", err)
	}
	if affected == 0 {
		return category.ErrNotFound
	}

	return nil
}
