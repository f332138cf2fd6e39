package dto

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"asafs_backend/internals/features/content/posts/model"
)

// ============================
// Query DTO
// ============================
type ListPostsQuery struct {
	Type   string `query:"type"`
	Status string `query:"status"`
}

// ============================
// Create Request DTO
// ============================
// Accepted as JSON or multipart form; the image file travels as "image".
type CreatePostRequest struct {
	Type     string `json:"type" form:"type" validate:"required,oneof=about programme evenement carousel partenaire timeline"`
	Title    string `json:"title" form:"title" validate:"required,max=255"`
	Content  string `json:"content" form:"content" validate:"required"`
	Category string `json:"category" form:"category" validate:"max=100"`
	Date     string `json:"date" form:"date"`
	Status   string `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
	Author   string `json:"author" form:"author" validate:"max=150"`
	ImageURL string `json:"imageUrl" form:"imageUrl"`
}

// ============================
// Update Request DTO
// ============================
// Empty values are treated as "not provided".
type UpdatePostRequest struct {
	Type     string `json:"type" form:"type" validate:"omitempty,oneof=about programme evenement carousel partenaire timeline"`
	Title    string `json:"title" form:"title" validate:"max=255"`
	Content  string `json:"content" form:"content"`
	Category string `json:"category" form:"category" validate:"max=100"`
	Date     string `json:"date" form:"date"`
	Status   string `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
	Author   string `json:"author" form:"author" validate:"max=150"`
	ImageURL string `json:"imageUrl" form:"imageUrl"`
}

// ParseDate accepts "2006-01-02" or RFC3339.
func ParseDate(raw string) (*datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			d := datatypes.Date(t.UTC())
			return &d, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", raw)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ============================
// Converter
// ============================
func (r CreatePostRequest) ToModel() (model.PostModel, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return model.PostModel{}, err
	}
	return model.PostModel{
		PostType:     r.Type,
		PostTitle:    strings.TrimSpace(r.Title),
		PostContent:  r.Content,
		PostCategory: optional(r.Category),
		PostDate:     date,
		PostStatus:   r.Status,
		PostAuthor:   optional(r.Author),
		PostImageURL: optional(r.ImageURL),
	}, nil
}

func (r UpdatePostRequest) ApplyTo(m *model.PostModel) error {
	if v := strings.TrimSpace(r.Type); v != "" {
		m.PostType = v
	}
	if v := strings.TrimSpace(r.Title); v != "" {
		m.PostTitle = v
	}
	if r.Content != "" {
		m.PostContent = r.Content
	}
	if v := optional(r.Category); v != nil {
		m.PostCategory = v
	}
	if strings.TrimSpace(r.Date) != "" {
		date, err := ParseDate(r.Date)
		if err != nil {
			return err
		}
		m.PostDate = date
	}
	if v := strings.TrimSpace(r.Status); v != "" {
		m.PostStatus = v
	}
	if v := optional(r.Author); v != nil {
		m.PostAuthor = v
	}
	if v := optional(r.ImageURL); v != nil {
		m.PostImageURL = v
	}
	return nil
}
