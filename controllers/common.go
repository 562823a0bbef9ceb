package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// sessionUserID returns the authenticated user's ID from the request
// context, or 0 when the route runs without the auth middleware.
func sessionUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// pagination reads ?page and ?per_page with the listing defaults.
func pagination(c *gin.Context) (page, perPage, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage, (page - 1) * perPage
}
