// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/sigana-id/sigana-server/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	ErrInvalidPage  = errors.New("page must be a positive integer")
	ErrInvalidLimit = errors.New("limit must be an integer between 1 and 100")
)

// ParsePagination reads ?page= and ?limit=, applying defaults when absent
func ParsePagination(r *http.Request) (page, limit int, err error) {
	page, limit = DefaultPage, DefaultLimit
	q := r.URL.Query()

	if v := q.Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, ErrInvalidPage
		}
	}
	if v := q.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 || limit > MaxLimit {
			return 0, 0, ErrInvalidLimit
		}
	}
	// The row offset (page-1)*limit must fit in an int.
	if page > math.MaxInt/limit {
		return 0, 0, ErrInvalidPage
	}
	return page, limit, nil
}

// NewPageMeta builds the meta block for a page of a total-row listing
func NewPageMeta(page, limit, total int) models.PageMeta {
	return models.PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}
