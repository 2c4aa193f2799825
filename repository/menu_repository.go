package repository

import (
	"strconv"

	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ---------------- Categories ----------------

func (r *MenuRepository) CreateCategory(c *entity.FoodCategory) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) GetCategory(id uint) (*entity.FoodCategory, error) {
	var c entity.FoodCategory
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindCategoryByRef resolves the ?category= filter value: numeric values
// are ids, anything else is a name.
func (r *MenuRepository) FindCategoryByRef(ref string) (*entity.FoodCategory, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		return r.GetCategory(uint(id))
	}
	var c entity.FoodCategory
	if err := r.DB.Where("name = ?", ref).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MenuRepository) ListCategories() ([]entity.FoodCategory, error) {
	var cats []entity.FoodCategory
	err := r.DB.Order("name").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) UpdateCategory(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.FoodCategory{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) CountItemsIn(categoryID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.FoodItem{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

// DeleteCategory is a hard delete so the unique slug frees up for a
// later re-creation.
func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Unscoped().Delete(&entity.FoodCategory{}, id).Error
}

// ---------------- Items ----------------

func (r *MenuRepository) CreateItem(i *entity.FoodItem) error {
	return r.DB.Create(i).Error
}

func (r *MenuRepository) GetItem(id uint) (*entity.FoodItem, error) {
	var i entity.FoodItem
	if err := r.DB.First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

// ListItems returns the catalog, optionally narrowed to one category.
func (r *MenuRepository) ListItems(categoryID *uint) ([]entity.FoodItem, error) {
	q := r.DB.Order("name")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	var items []entity.FoodItem
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) UpdateItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.FoodItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&entity.FoodItem{}, id).Error
}
