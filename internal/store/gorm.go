package store

import (
	"context"
	"errors"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GormStore implements Store on a relational database through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	query := s.db.WithContext(ctx).Order("id")
	if category != "" && category != models.CategoryAll {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Where("featured = ?", true).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// CreateUser leans on the email unique index so concurrent registers of the
// same address cannot both succeed; the losing insert maps to ErrEmailTaken.
func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateOrder writes the order row and all item rows in one transaction so a
// failed checkout never leaves a half-written order behind.
func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items
		return nil
	})
}

func (s *GormStore) ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) GetOrderForUser(ctx context.Context, orderID, userID int64) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		// Not-owned looks identical to not-found on purpose.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) AddWishlistItem(ctx context.Context, userID, productID int64) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		item = models.WishlistItem{UserID: userID, ProductID: productID}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormStore) RemoveWishlistItem(ctx context.Context, userID, productID int64) error {
	return s.db.WithContext(ctx).
		Delete(&models.WishlistItem{}, "user_id = ? AND product_id = ?", userID, productID).Error
}

func (s *GormStore) ToggleWishlistItem(ctx context.Context, userID, productID int64) (bool, error) {
	var added bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.WishlistItem{}, "user_id = ? AND product_id = ?", userID, productID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			added = false
			return nil
		}
		added = true
		return tx.Create(&models.WishlistItem{UserID: userID, ProductID: productID}).Error
	})
	return added, err
}

func (s *GormStore) ListWishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) HasWishlistItem(ctx context.Context, userID, productID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) GetCart(ctx context.Context, userID int64) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *GormStore) AddCartLine(ctx context.Context, userID, productID int64, quantity int) (*models.CartLine, error) {
	var line models.CartLine
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&line, "user_id = ? AND product_id = ?", userID, productID).Error
		if err == nil {
			line.Quantity += quantity
			return tx.Save(&line).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		line = models.CartLine{UserID: userID, ProductID: productID, Quantity: quantity}
		return tx.Create(&line).Error
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (s *GormStore) SetCartLineQuantity(ctx context.Context, userID, productID int64, quantity int) (*models.CartLine, error) {
	var line models.CartLine
	err := s.db.WithContext(ctx).First(&line, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	line.Quantity = quantity
	if err := s.db.WithContext(ctx).Save(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (s *GormStore) RemoveCartLine(ctx context.Context, userID, productID int64) error {
	res := s.db.WithContext(ctx).Delete(&models.CartLine{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ClearCart(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).Delete(&models.CartLine{}, "user_id = ?", userID).Error
}
