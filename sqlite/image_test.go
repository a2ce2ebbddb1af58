package sqlite_test

import (
	"context"
	"testing"

	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/niravbeni/inside-ideo/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageService_CreateImages(t *testing.T) {
	t.Parallel()

	t.Run("stores images and finds them in page then index order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		session := createTestSession(t, db)
		svc := sqlite.NewImageService(db)
		ctx := context.Background()

		images := []*insideideo.ExtractedImage{
			{Filename: "img_2_0.png", Page: 2, Index: 0, Description: "A chart with data"},
			{Filename: "img_1_1.png", Page: 1, Index: 1, OCRText: "Revenue 2024"},
			{Filename: "img_1_0.png", Page: 1, Index: 0, Description: "A photo of people"},
		}
		require.NoError(t, svc.CreateImages(ctx, session.ID, images))

		found, err := svc.FindImagesBySession(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, found, 3)

		assert.Equal(t, "img_1_0.png", found[0].Filename)
		assert.Equal(t, "img_1_1.png", found[1].Filename)
		assert.Equal(t, "img_2_0.png", found[2].Filename)

		assert.Equal(t, session.ID, found[0].SessionID)
		assert.Equal(t, "Revenue 2024", found[1].OCRText)
		assert.Equal(t, "A chart with data", found[2].Description)
	})

	t.Run("returns error for invalid image", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		session := createTestSession(t, db)
		svc := sqlite.NewImageService(db)

		err := svc.CreateImages(context.Background(), session.ID, []*insideideo.ExtractedImage{{}})
		require.Error(t, err)
		assert.Equal(t, insideideo.EINVALID, insideideo.ErrorCode(err))
	})

	t.Run("returns empty list for session without images", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		session := createTestSession(t, db)
		svc := sqlite.NewImageService(db)

		found, err := svc.FindImagesBySession(context.Background(), session.ID)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
