package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/lexso"
	"github.com/fwojciec/lexso/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotationService_AttachIdentifier(t *testing.T) {
	t.Parallel()

	foreignID := lexso.ForeignID{ID: "O_1", Property: "P9837", SourceItemID: "Q108312794"}

	t.Run("records the identifier", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnnotationService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.AttachIdentifier(ctx, "L1", foreignID))

		got, err := svc.FindAnnotations(ctx, lexso.AnnotationFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.NotEmpty(t, got[0].ID)
		assert.Equal(t, "L1", got[0].LexemeID)
		assert.Equal(t, foreignID, got[0].ForeignID)
		assert.False(t, got[0].CreatedAt.IsZero())
	})

	t.Run("records no-value annotations", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnnotationService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.AttachIdentifier(ctx, "L2", lexso.ForeignID{Property: "P9837", NoValue: true}))

		got, err := svc.FindAnnotations(ctx, lexso.AnnotationFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].ForeignID.NoValue)
		assert.Empty(t, got[0].ForeignID.ID)
	})

	t.Run("rejects a second value for the same property", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnnotationService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.AttachIdentifier(ctx, "L1", foreignID))

		err := svc.AttachIdentifier(ctx, "L1", lexso.ForeignID{ID: "O_2", Property: "P9837"})

		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(err))
	})

	t.Run("rejects invalid annotations", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnnotationService(setupTestDB(t))
		ctx := context.Background()

		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(svc.AttachIdentifier(ctx, "", foreignID)))
		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(svc.AttachIdentifier(ctx, "L1", lexso.ForeignID{Property: "P9837"})))
		assert.Equal(t, lexso.EINVALID, lexso.ErrorCode(svc.AttachIdentifier(ctx, "L1", lexso.ForeignID{ID: "O_1"})))
	})
}

func TestAnnotationService_FindAnnotations(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewAnnotationService(setupTestDB(t))
	ctx := context.Background()
	for _, id := range []string{"L1", "L2", "L3"} {
		require.NoError(t, svc.AttachIdentifier(ctx, id, lexso.ForeignID{ID: "O_1", Property: "P9837"}))
	}

	t.Run("filters by lexeme", func(t *testing.T) {
		lexemeID := "L2"

		got, err := svc.FindAnnotations(ctx, lexso.AnnotationFilter{LexemeID: &lexemeID})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "L2", got[0].LexemeID)
	})

	t.Run("returns oldest first with pagination", func(t *testing.T) {
		got, err := svc.FindAnnotations(ctx, lexso.AnnotationFilter{Offset: 1, Limit: 1})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "L2", got[0].LexemeID)
	})
}
