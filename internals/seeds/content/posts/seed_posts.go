package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"asafs_backend/internals/features/content/posts/dto"
	"asafs_backend/internals/features/content/posts/model"
)

// SeedPostsFromJSON inserts posts whose (type, title) pair is not present yet.
func SeedPostsFromJSON(ctx context.Context, db *gorm.DB, filePath string, log zerolog.Logger) (int, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}
	var inputs []dto.CreatePostRequest
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	created := 0
	for _, in := range inputs {
		post, err := in.ToModel()
		if err != nil {
			return created, fmt.Errorf("post %q: %w", in.Title, err)
		}

		var n int64
		if err := db.WithContext(ctx).Model(&model.PostModel{}).
			Where("post_type = ? AND post_title = ?", post.PostType, post.PostTitle).
			Count(&n).Error; err != nil {
			return created, err
		}
		if n > 0 {
			continue
		}
		if err := db.WithContext(ctx).Create(&post).Error; err != nil {
			return created, fmt.Errorf("insert post %q: %w", in.Title, err)
		}
		created++
	}
	log.Info().Int("created", created).Int("total", len(inputs)).Msg("posts seeded")
	return created, nil
}
