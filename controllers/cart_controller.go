package controllers

import (
	"net/http"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart: the cart is created lazily on first access.
func (h *CartController) Get(c *gin.Context) {
	cart, total, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "cart": cart, "total": total})
}

type cartItemRef struct {
	ID *uint `json:"id"`
}

// POST /cart: attach an existing cart line (by id) to the caller's cart.
func (h *CartController) Attach(c *gin.Context) {
	var body cartItemRef
	if err := c.ShouldBindJSON(&body); err != nil || body.ID == nil {
		resp.FieldError(c, "id", "a valid integer is required")
		return
	}
	if err := h.Svc.AttachItem(utils.CurrentUserID(c), *body.ID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{})
}

// DELETE /cart: with no body clears the cart; with an id removes the one
// line, reporting not found when that id is absent.
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if c.Request.ContentLength == 0 {
		if err := h.Svc.Clear(uid); err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, gin.H{})
		return
	}

	var body cartItemRef
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.FieldError(c, "id", "a valid integer is required")
		return
	}
	if body.ID == nil {
		if err := h.Svc.Clear(uid); err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, gin.H{})
		return
	}

	if err := h.Svc.RemoveItem(uid, *body.ID, true); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
