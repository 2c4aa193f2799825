package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartItemController struct {
	Svc *services.CartService
}

func NewCartItemController(svc *services.CartService) *CartItemController {
	return &CartItemController{Svc: svc}
}

// managers see every customer's lines; everyone else only their own
func scopeToCustomer(c *gin.Context) bool {
	actor := utils.CurrentActor(c)
	return !actor.HasAny(entity.RoleSysAdmin, entity.RoleManager)
}

// GET /order-items
func (h *CartItemController) List(c *gin.Context) {
	items, err := h.Svc.ListItems(utils.CurrentUserID(c), scopeToCustomer(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /order-items: one line per (customer, food item); a duplicate add
// is a conflict, the caller updates the existing line instead.
func (h *CartItemController) Create(c *gin.Context) {
	var in services.AddItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FieldError(c, "id", "a valid integer is required")
		return
	}
	item, err := h.Svc.AddItem(utils.CurrentUserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /order-items/:id
func (h *CartItemController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := h.Svc.GetItem(utils.CurrentUserID(c), id, scopeToCustomer(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

type quantityIn struct {
	Quantity *int `json:"quantity"`
}

// PATCH /order-items/:id: the only mutable field is the quantity; the
// total is recomputed from the frozen unit price.
func (h *CartItemController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body quantityIn
	if err := c.ShouldBindJSON(&body); err != nil || body.Quantity == nil {
		resp.FieldError(c, "quantity", "field requires a valid integer")
		return
	}
	item, err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), id, *body.Quantity, scopeToCustomer(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /order-items/:id
func (h *CartItemController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), id, scopeToCustomer(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
