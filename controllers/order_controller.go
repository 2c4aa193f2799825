package controllers

import (
	"net/http"

	"backend/pkg/resp"
	"backend/policy"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc    *services.OrderService
	Policy *policy.Policy
}

func NewOrderController(svc *services.OrderService, p *policy.Policy) *OrderController {
	return &OrderController{Svc: svc, Policy: p}
}

// GET /orders: row scoping by role: management sees all, delivery staff
// their assignments, customers their own.
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.List(utils.CurrentActor(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders: checkout: the caller's cart becomes a transaction plus an
// order, atomically, and the cart empties.
func (h *OrderController) Create(c *gin.Context) {
	order, err := h.Svc.Checkout(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (h *OrderController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := h.Svc.Get(utils.CurrentActor(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

type orderPatchIn struct {
	Status                   *int  `json:"status"`
	AssignedDeliveryPersonID *uint `json:"assigned_delivery_person_id"`
}

// PATCH /orders/:id: status 0/1 and/or delivery reassignment. Delivery
// staff may only flip the flag on orders assigned to them; reassignment
// needs management.
func (h *OrderController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body orderPatchIn
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	actor := utils.CurrentActor(c)

	// Resolve within the actor's visibility scope first: an order outside
	// it is indistinguishable from an absent one.
	order, err := h.Svc.Get(actor, id)
	if err != nil {
		fail(c, err)
		return
	}

	assigned := order.DeliveryPersonID != nil && *order.DeliveryPersonID == actor.ID
	req := policy.Request{
		Actor:           actor,
		Resource:        policy.ResourceOrder,
		Verb:            http.MethodPatch,
		StatusOnly:      body.AssignedDeliveryPersonID == nil,
		AssignedToActor: assigned,
	}
	if h.Policy.Decide(req) != policy.Allow {
		resp.Forbidden(c, "forbidden")
		return
	}

	if body.AssignedDeliveryPersonID != nil {
		order, err = h.Svc.AssignDeliveryPerson(id, *body.AssignedDeliveryPersonID)
		if err != nil {
			fail(c, err)
			return
		}
	}
	if body.Status != nil {
		order, err = h.Svc.SetDeliveryStatus(id, *body.Status)
		if err != nil {
			fail(c, err)
			return
		}
	}
	resp.OK(c, order)
}

// DELETE /orders/:id: management only (route-level policy).
func (h *OrderController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	req := policy.Request{
		Actor:    utils.CurrentActor(c),
		Resource: policy.ResourceOrder,
		Verb:     http.MethodDelete,
	}
	if h.Policy.Decide(req) != policy.Allow {
		resp.Forbidden(c, "forbidden")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}
