package service

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"asafs_backend/internals/features/content/posts/dto"
	"asafs_backend/internals/features/content/posts/model"
	helper "asafs_backend/internals/helpers"
	"asafs_backend/internals/helpers/storage"
)

const (
	imageFolder = "posts"
	msgNotFound = "Post not found"
)

var ErrPostNotFound = helper.NewAppError(msgNotFound, http.StatusNotFound)

// Image is an uploaded file still in its original encoding.
type Image struct {
	Filename string
	Body     io.Reader
}

type PostService struct {
	DB     *gorm.DB
	Images storage.ImageStore
	WebP   helper.WebPOptions
}

func NewPostService(db *gorm.DB, images storage.ImageStore) *PostService {
	return &PostService{DB: db, Images: images, WebP: helper.DefaultWebPOptions}
}

// List returns posts newest first, optionally filtered by type and status.
func (s *PostService) List(ctx context.Context, q dto.ListPostsQuery) ([]model.PostModel, error) {
	tx := s.DB.WithContext(ctx).Model(&model.PostModel{})
	if q.Type != "" {
		tx = tx.Where("post_type = ?", q.Type)
	}
	if q.Status != "" {
		tx = tx.Where("post_status = ?", q.Status)
	}

	posts := make([]model.PostModel, 0)
	if err := tx.Order("post_created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, rawID string) (*model.PostModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	var post model.PostModel
	if err := s.DB.WithContext(ctx).First(&post, "post_id = ?", id).Error; err != nil {
		return nil, helper.MapDBError(err, msgNotFound, "")
	}
	return &post, nil
}

func (s *PostService) Create(ctx context.Context, req dto.CreatePostRequest, img *Image) (*model.PostModel, error) {
	post, err := req.ToModel()
	if err != nil {
		return nil, helper.WrapAppError(err, "Invalid date", http.StatusBadRequest)
	}
	if img != nil {
		url, err := s.storeImage(ctx, img)
		if err != nil {
			return nil, err
		}
		post.PostImageURL = &url
	}
	if err := s.DB.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update applies provided fields only. A new image replaces imageUrl.
func (s *PostService) Update(ctx context.Context, rawID string, req dto.UpdatePostRequest, img *Image) (*model.PostModel, error) {
	post, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := req.ApplyTo(post); err != nil {
		return nil, helper.WrapAppError(err, "Invalid date", http.StatusBadRequest)
	}
	if img != nil {
		url, err := s.storeImage(ctx, img)
		if err != nil {
			return nil, err
		}
		post.PostImageURL = &url
	}
	if err := s.DB.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ErrPostNotFound
	}
	res := s.DB.WithContext(ctx).Delete(&model.PostModel{}, "post_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *PostService) storeImage(ctx context.Context, img *Image) (string, error) {
	data, err := helper.ConvertToWebP(img.Body, img.Filename, s.WebP)
	if err != nil {
		return "", err
	}
	return s.Images.Save(ctx, storage.NewImageKey(imageFolder), data, "image/webp")
}
