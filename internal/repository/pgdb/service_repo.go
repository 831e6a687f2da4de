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
	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/tr"
)

// ServiceRepo реализует репозиторий услуг поверх PostgreSQL.
type ServiceRepo struct {
	pool *pgxpool.Pool
	conv converter.ServiceConverter
}

func NewServiceRepo(pool *pgxpool.Pool, conv converter.ServiceConverter) *ServiceRepo {
	return &ServiceRepo{pool: pool, conv: conv}
}

func (s *ServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	query := `
		SELECT id, name, slug, image_key, description
		FROM services
		ORDER BY id;
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ServiceModel, 0)
	for rows.Next() {
		var model converter.ServiceModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Slug, &model.ImageKey, &model.Description); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToArrEntity(models), nil
}

func (s *ServiceRepo) GetBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	query := `
		SELECT id, name, slug, image_key, description
		FROM services
		WHERE slug = $1;
	`

	var model converter.ServiceModel
	err := s.pool.QueryRow(ctx, query, slug).
		Scan(&model.ID, &model.Name, &model.Slug, &model.ImageKey, &model.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrServiceNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

func (s *ServiceRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM services WHERE slug = $1);`

	var exists bool
	if err := s.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (s *ServiceRepo) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := s.conv.ToModel(service)
	query := `
		INSERT INTO services (name, slug, image_key, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	if err := tx.QueryRow(ctx, query,
		model.Name, model.Slug, model.ImageKey, model.Description,
	).Scan(&model.ID); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: service with slug %s already exists", whereami.WhereAmI(), service.Slug)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(model), nil
}
