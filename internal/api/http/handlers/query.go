package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

const defaultPageSize = 10

// pagination converts page and page_size query parameters into a
// limit/offset pair. Pages are zero based, so offset is page*page_size.
func pagination(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 0)
	pageSize := parseInt(c.Query("page_size"), defaultPageSize)
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page < 0 {
		page = 0
	}
	return pageSize, page * pageSize
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}

// parseIDParam reads a numeric :id path parameter.
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}

// queryInt64 reads an optional numeric query parameter.
func queryInt64(c *fiber.Ctx, name string) *int64 {
	val := c.Query(name)
	if val == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// queryString reads an optional string query parameter.
func queryString(c *fiber.Ctx, name string) *string {
	val := c.Query(name)
	if val == "" {
		return nil
	}
	return &val
}
