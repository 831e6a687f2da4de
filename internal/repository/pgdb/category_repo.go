package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/stalprokat/catalog-backend/internal/domain"
	"github.com/stalprokat/catalog-backend/internal/repository/pgdb/converter"
	"github.com/stalprokat/catalog-backend/internal/usecase"
	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/tr"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

func (c *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, image_key, about, parent_id
		FROM categories
		WHERE slug = $1;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, slug).
		Scan(&model.ID, &model.Name, &model.Slug, &model.ImageKey, &model.About, &model.ParentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrCategoryNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, image_key, about, parent_id
		FROM categories
		WHERE id = $1;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Slug, &model.ImageKey, &model.About, &model.ParentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrCategoryNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// ListAll возвращает все категории одним запросом: дерево строится в памяти.
func (c *CategoryRepo) ListAll(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, image_key, about, parent_id
		FROM categories
		ORDER BY id;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.CategoryModel, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Slug, &model.ImageKey, &model.About, &model.ParentID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}

// SearchByName ищет категории по подстроке имени без учёта регистра,
// подтягивая имя родителя для подписи в выдаче.
func (c *CategoryRepo) SearchByName(ctx context.Context, query string) ([]usecase.CategoryMatch, error) {
	sqlQuery := `
		SELECT cat.name, cat.slug, parent.name, cat.image_key
		FROM categories cat
		LEFT JOIN categories parent ON cat.parent_id = parent.id
		WHERE cat.name ILIKE '%' || $1 || '%'
		ORDER BY cat.name;
	`

	rows, err := c.pool.Query(ctx, sqlQuery, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.CategoryMatch, 0)
	for rows.Next() {
		var match usecase.CategoryMatch
		if err := rows.Scan(&match.Name, &match.Slug, &match.ParentName, &match.ImageKey); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, match)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CategoryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1);`

	var exists bool
	if err := c.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := c.conv.ToModel(category)
	query := `
		INSERT INTO categories (name, slug, image_key, about, parent_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	if err := tx.QueryRow(ctx, query,
		model.Name, model.Slug, model.ImageKey, model.About, model.ParentID,
	).Scan(&model.ID); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: category with slug %s already exists", whereami.WhereAmI(), category.Slug)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) UpdateParent(ctx context.Context, id int64, parentID *int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `UPDATE categories SET parent_id = $1 WHERE id = $2;`

	result, err := tx.Exec(ctx, query, parentID, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return e.ErrCategoryNotFound
	}

	return nil
}

// Delete удаляет категорию; поддерево и товары снимаются каскадом по схеме.
func (c *CategoryRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `DELETE FROM categories WHERE id = $1;`

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return e.ErrCategoryNotFound
	}

	return nil
}
