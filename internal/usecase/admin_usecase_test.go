package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUseCase_AssignSlug(t *testing.T) {
	uc := &AdminUseCase{}

	t.Run("свободный слаг берётся как есть", func(t *testing.T) {
		exists := func(ctx context.Context, slug string) (bool, error) { return false, nil }

		got, err := uc.assignSlug(context.Background(), "Листовой прокат", exists)
		require.NoError(t, err)
		assert.Equal(t, "listovoi-prokat", got)
	})

	t.Run("коллизии получают числовой суффикс", func(t *testing.T) {
		taken := map[string]bool{
			"listovoi-prokat":   true,
			"listovoi-prokat-1": true,
		}
		exists := func(ctx context.Context, slug string) (bool, error) { return taken[slug], nil }

		got, err := uc.assignSlug(context.Background(), "Листовой прокат", exists)
		require.NoError(t, err)
		assert.Equal(t, "listovoi-prokat-2", got)
	})

	t.Run("суффикс добавляется к базе, а не к кандидату", func(t *testing.T) {
		taken := map[string]bool{"truba": true, "truba-1": true, "truba-2": true}
		exists := func(ctx context.Context, slug string) (bool, error) { return taken[slug], nil }

		got, err := uc.assignSlug(context.Background(), "Труба", exists)
		require.NoError(t, err)
		assert.Equal(t, "truba-3", got)
	})
}
