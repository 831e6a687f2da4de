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

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `
		SELECT id, name, slug, image_key, external_url, category_id, description
		FROM products
		WHERE slug = $1;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, slug).
		Scan(
			&model.ID, &model.Name, &model.Slug, &model.ImageKey,
			&model.ExternalURL, &model.CategoryID, &model.Description,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrProductNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// ListByCategory возвращает карточки товаров одной категории в порядке добавления.
func (p *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]usecase.ProductCard, error) {
	query := `
		SELECT pr.id, pr.name, pr.slug, pr.image_key, pr.category_id, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.category_id = $1
		ORDER BY pr.id;
	`

	return p.queryCards(ctx, query, categoryID)
}

// ListByCategoryIDs возвращает карточки товаров всех перечисленных категорий
// в случайном порядке, чтобы листинг раздела не выглядел статичным.
func (p *ProductRepo) ListByCategoryIDs(ctx context.Context, categoryIDs []int64) ([]usecase.ProductCard, error) {
	query := `
		SELECT pr.id, pr.name, pr.slug, pr.image_key, pr.category_id, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.category_id = ANY($1)
		ORDER BY random();
	`

	return p.queryCards(ctx, query, categoryIDs)
}

// ListRandom возвращает случайную выборку карточек для главной страницы.
func (p *ProductRepo) ListRandom(ctx context.Context, limit int) ([]usecase.ProductCard, error) {
	query := `
		SELECT pr.id, pr.name, pr.slug, pr.image_key, pr.category_id, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		ORDER BY random()
		LIMIT $1;
	`

	return p.queryCards(ctx, query, limit)
}

// SearchByName ищет товары по подстроке имени без учёта регистра,
// подтягивая имя категории для подписи в выдаче.
func (p *ProductRepo) SearchByName(ctx context.Context, query string) ([]usecase.ProductMatch, error) {
	sqlQuery := `
		SELECT pr.name, pr.slug, cat.name, pr.image_key
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.name ILIKE '%' || $1 || '%'
		ORDER BY pr.name;
	`

	rows, err := p.pool.Query(ctx, sqlQuery, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductMatch, 0)
	for rows.Next() {
		var match usecase.ProductMatch
		if err := rows.Scan(&match.Name, &match.Slug, &match.CategoryName, &match.ImageKey); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, match)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1);`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (name, slug, image_key, external_url, category_id, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`

	if err := tx.QueryRow(ctx, query,
		model.Name, model.Slug, model.ImageKey, model.ExternalURL, model.CategoryID, model.Description,
	).Scan(&model.ID); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: product with slug %s already exists", whereami.WhereAmI(), product.Slug)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) queryCards(ctx context.Context, query string, args ...any) ([]usecase.ProductCard, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductCard, 0)
	for rows.Next() {
		var card usecase.ProductCard
		if err := rows.Scan(&card.ID, &card.Name, &card.Slug, &card.ImageKey, &card.CategoryID, &card.CategoryName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, card)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
