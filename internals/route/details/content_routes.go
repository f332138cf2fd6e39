package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	postController "asafs_backend/internals/features/content/posts/controller"
	postRoute "asafs_backend/internals/features/content/posts/route"
	postService "asafs_backend/internals/features/content/posts/service"
	"asafs_backend/internals/helpers/storage"
)

// Contoh akses: /api/posts?type=programme&status=published
func ContentRoutes(api fiber.Router, db *gorm.DB, images storage.ImageStore, log zerolog.Logger, authMw fiber.Handler) {
	ctrl := postController.NewPostController(postService.NewPostService(db, images), log)
	postRoute.PostRoutes(api, ctrl, authMw)
}
