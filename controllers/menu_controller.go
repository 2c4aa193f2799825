package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// ---------------- Menu items ----------------

// GET /menu-items?category=<id|name>
func (m *MenuController) ListItems(c *gin.Context) {
	items, err := m.Svc.ListItems(c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu-items
func (m *MenuController) CreateItem(c *gin.Context) {
	var in services.FoodItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := m.Svc.CreateItem(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /menu-items/:id
func (m *MenuController) GetItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := m.Svc.GetItem(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT/PATCH /menu-items/:id
func (m *MenuController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in services.FoodItemUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := m.Svc.UpdateItem(id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (m *MenuController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := m.Svc.DeleteItem(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}

// ---------------- Categories ----------------

// GET /categories
func (m *MenuController) ListCategories(c *gin.Context) {
	cats, err := m.Svc.ListCategories()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /categories
func (m *MenuController) CreateCategory(c *gin.Context) {
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := m.Svc.CreateCategory(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /categories/:id
func (m *MenuController) GetCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	cat, err := m.Svc.GetCategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// PUT/PATCH /categories/:id
func (m *MenuController) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := m.Svc.UpdateCategory(id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id: blocked while items reference the category.
func (m *MenuController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := m.Svc.DeleteCategory(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// GET /categories/:id/menu-items
func (m *MenuController) ItemsInCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	items, err := m.Svc.ItemsInCategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}
