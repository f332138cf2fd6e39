package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var AdminOpts = Options{DefaultPerPage: 50, MaxPerPage: 500}

type Params struct {
	Page    int
	PerPage int
	// Requested is false when the query carried no paging keys; callers
	// then return the whole list.
	Requested bool
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// ParseFiber reads page and per_page (or limit) from the query string.
func ParseFiber(c *fiber.Ctx, opt Options) Params {
	q := c.Queries()
	perRaw := firstNonEmpty(q["per_page"], q["limit"])

	p := Params{
		Page:      atoiDefault(q["page"], DefaultPage),
		PerPage:   atoiDefault(perRaw, opt.DefaultPerPage),
		Requested: strings.TrimSpace(q["page"]) != "" || strings.TrimSpace(perRaw) != "",
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = opt.DefaultPerPage
	}
	if p.PerPage > opt.MaxPerPage {
		p.PerPage = opt.MaxPerPage
	}
	return p
}

// Limit & Offset
func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// Meta untuk response
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func BuildMeta(total int64, p Params) Meta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PerPage)))
	}
	return Meta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    totalPages > 0 && p.Page < totalPages,
	}
}
