package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"asafs_backend/internals/features/content/posts/dto"
	"asafs_backend/internals/features/content/posts/service"
	helper "asafs_backend/internals/helpers"
)

type PostController struct {
	Service  *service.PostService
	Validate *validator.Validate
	Log      zerolog.Logger
}

func NewPostController(svc *service.PostService, log zerolog.Logger) *PostController {
	return &PostController{
		Service:  svc,
		Validate: helper.NewValidator(),
		Log:      log.With().Str("component", "posts").Logger(),
	}
}

// imageFrom opens the optional "image" file of a multipart request.
// The returned close func is never nil.
func imageFrom(c *fiber.Ctx) (*service.Image, func(), error) {
	noop := func() {}
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return nil, noop, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, helper.WrapAppError(err, "Failed to read uploaded image", fiber.StatusBadRequest)
	}
	return &service.Image{Filename: fh.Filename, Body: f}, func() { _ = f.Close() }, nil
}

// GET /api/posts?type=&status=
func (ctrl *PostController) List(c *fiber.Ctx) error {
	var q dto.ListPostsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Invalid query")
	}
	posts, err := ctrl.Service.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// GET /api/posts/:id
func (ctrl *PostController) Get(c *fiber.Ctx) error {
	post, err := ctrl.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// POST /api/posts
func (ctrl *PostController) Create(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	img, closeImg, err := imageFrom(c)
	if err != nil {
		return err
	}
	defer closeImg()

	post, err := ctrl.Service.Create(c.UserContext(), req, img)
	if err != nil {
		return err
	}
	ctrl.Log.Info().Str("post_id", post.PostID.String()).Str("type", post.PostType).Msg("post created")
	return c.Status(fiber.StatusCreated).JSON(post)
}

// PUT /api/posts/:id
func (ctrl *PostController) Update(c *fiber.Ctx) error {
	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	img, closeImg, err := imageFrom(c)
	if err != nil {
		return err
	}
	defer closeImg()

	post, err := ctrl.Service.Update(c.UserContext(), c.Params("id"), req, img)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// DELETE /api/posts/:id
func (ctrl *PostController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	ctrl.Log.Info().Str("post_id", c.Params("id")).Msg("post deleted")
	return c.JSON(fiber.Map{"message": "Post deleted"})
}
