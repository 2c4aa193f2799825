package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ---------------- Items ----------------

type FoodItemIn struct {
	Name       string `json:"name" binding:"required"`
	Cost       int64  `json:"cost" binding:"required,min=0"`
	Featured   bool   `json:"featured"`
	CategoryID uint   `json:"categoryId" binding:"required"`
}

func (s *MenuService) CreateItem(in *FoodItemIn) (*entity.FoodItem, error) {
	if _, err := s.GetCategory(in.CategoryID); err != nil {
		return nil, err
	}
	item := &entity.FoodItem{
		Name:       in.Name,
		Cost:       in.Cost,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems narrows the catalog by the ?category= value (id or name).
// An unknown category reference is a not-found, not an empty list.
func (s *MenuService) ListItems(categoryRef string) ([]entity.FoodItem, error) {
	if categoryRef == "" {
		return s.Repo.ListItems(nil)
	}
	cat, err := s.Repo.FindCategoryByRef(categoryRef)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Repo.ListItems(&cat.ID)
}

func (s *MenuService) GetItem(id uint) (*entity.FoodItem, error) {
	item, err := s.Repo.GetItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

type FoodItemUpdateIn struct {
	Name       *string `json:"name"`
	Cost       *int64  `json:"cost" binding:"omitempty,min=0"`
	Featured   *bool   `json:"featured"`
	CategoryID *uint   `json:"categoryId"`
}

func (s *MenuService) UpdateItem(id uint, in *FoodItemUpdateIn) (*entity.FoodItem, error) {
	if _, err := s.GetItem(id); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Cost != nil {
		updates["cost"] = *in.Cost
	}
	if in.Featured != nil {
		updates["featured"] = *in.Featured
	}
	if in.CategoryID != nil {
		if _, err := s.GetCategory(*in.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *in.CategoryID
	}
	if len(updates) > 0 {
		if err := s.Repo.UpdateItem(id, updates); err != nil {
			return nil, err
		}
	}
	return s.GetItem(id)
}

func (s *MenuService) DeleteItem(id uint) error {
	if _, err := s.GetItem(id); err != nil {
		return err
	}
	return s.Repo.DeleteItem(id)
}

// ---------------- Categories ----------------

type CategoryIn struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

func (s *MenuService) CreateCategory(in *CategoryIn) (*entity.FoodCategory, error) {
	cat := &entity.FoodCategory{Name: in.Name, Slug: in.Slug}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) ListCategories() ([]entity.FoodCategory, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) GetCategory(id uint) (*entity.FoodCategory, error) {
	cat, err := s.Repo.GetCategory(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return cat, err
}

func (s *MenuService) UpdateCategory(id uint, in *CategoryIn) (*entity.FoodCategory, error) {
	if _, err := s.GetCategory(id); err != nil {
		return nil, err
	}
	updates := map[string]any{"name": in.Name, "slug": in.Slug}
	if err := s.Repo.UpdateCategory(id, updates); err != nil {
		return nil, err
	}
	return s.GetCategory(id)
}

// DeleteCategory is blocked while items still reference the category.
func (s *MenuService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	n, err := s.Repo.CountItemsIn(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	return s.Repo.DeleteCategory(id)
}

// ItemsInCategory backs GET /categories/:id/menu-items.
func (s *MenuService) ItemsInCategory(categoryID uint) ([]entity.FoodItem, error) {
	if _, err := s.GetCategory(categoryID); err != nil {
		return nil, err
	}
	return s.Repo.ListItems(&categoryID)
}
