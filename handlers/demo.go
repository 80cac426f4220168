package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minwoopark/board-api/service"
)

// DemoHandler serves the root route, the dev-only user dump, and the item
// demo routes.
type DemoHandler struct {
	auth *service.AuthService
}

func NewDemoHandler(auth *service.AuthService) *DemoHandler {
	return &DemoHandler{auth: auth}
}

// Root handles GET /.
func (h *DemoHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Hello": "World"})
}

// ListUsers handles GET /api/test. Development aid; password hashes are
// never included in the dump.
func (h *DemoHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("user dump failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_data": users})
}

// GetItem handles GET /items/:id with an optional q query parameter.
func (h *DemoHandler) GetItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id must be an integer"})
		return
	}
	resp := gin.H{"item_id": itemID}
	if q, ok := c.GetQuery("q"); ok {
		resp["q"] = q
	} else {
		resp["q"] = nil
	}
	c.JSON(http.StatusOK, resp)
}

type UpdateItemRequest struct {
	Name    string  `json:"name" binding:"required"`
	Price   float64 `json:"price" binding:"required"`
	IsOffer *bool   `json:"is_offer"`
}

// UpdateItem handles PUT /items/:id.
func (h *DemoHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id must be an integer"})
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item_id": itemID, "item_price": req.Price})
}
