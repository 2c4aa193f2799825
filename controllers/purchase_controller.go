package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// PurchaseController serves the read side of completed checkouts: each
// customer sees only their own transaction history.
type PurchaseController struct {
	Svc *services.PurchaseService
}

func NewPurchaseController(svc *services.PurchaseService) *PurchaseController {
	return &PurchaseController{Svc: svc}
}

// GET /purchases
func (h *PurchaseController) List(c *gin.Context) {
	list, err := h.Svc.ListForCustomer(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, list)
}

// GET /purchases/:id
func (h *PurchaseController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	t, err := h.Svc.GetForCustomer(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /purchases/:id: management only; refused while an order still
// references the transaction.
func (h *PurchaseController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "transaction deleted"})
}

// ---------------- Purchase items ----------------

// GET /purchase-items
func (h *PurchaseController) ListItems(c *gin.Context) {
	items, err := h.Svc.ListItemsForCustomer(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /purchase-items/:id
func (h *PurchaseController) GetItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := h.Svc.GetItemForCustomer(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT/PATCH /purchase-items/:id: management-only correction.
func (h *PurchaseController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in services.PurchaseItemUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateItem(id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /purchase-items/:id
func (h *PurchaseController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteItem(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "transaction item deleted"})
}
