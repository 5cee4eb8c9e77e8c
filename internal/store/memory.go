package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront/internal/models"
)

// MemoryStore implements Store with map-backed storage and incrementing
// integer ids. It backs tests and small development setups.
type MemoryStore struct {
	mu        sync.RWMutex
	products  map[int64]*models.Product
	users     map[int64]*models.User
	orders    map[int64]*models.Order
	wishlists map[int64][]*models.WishlistItem // userID -> items
	carts     map[int64][]*models.CartLine     // userID -> lines

	nextProductID  int64
	nextUserID     int64
	nextOrderID    int64
	nextItemID     int64
	nextWishlistID int64
	nextCartLineID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:  make(map[int64]*models.Product),
		users:     make(map[int64]*models.User),
		orders:    make(map[int64]*models.Order),
		wishlists: make(map[int64][]*models.WishlistItem),
		carts:     make(map[int64][]*models.CartLine),
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) ListProducts(_ context.Context, category string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && category != models.CategoryAll && p.Category != category {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *MemoryStore) FeaturedProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Product
	for _, p := range s.products {
		if p.Featured {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *MemoryStore) GetProduct(_ context.Context, id int64) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) CreateProduct(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		s.nextProductID++
		p.ID = s.nextProductID
	} else if p.ID > s.nextProductID {
		s.nextProductID = p.ID
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	s.nextUserID++
	u.ID = s.nextUserID
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUser(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, order *models.Order, items []models.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrderID++
	order.ID = s.nextOrderID
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	order.Items = make([]models.OrderItem, len(items))
	for i := range items {
		s.nextItemID++
		items[i].ID = s.nextItemID
		items[i].OrderID = order.ID
		items[i].CreatedAt = now
		order.Items[i] = items[i]
	}

	cp := *order
	cp.Items = append([]models.OrderItem(nil), order.Items...)
	s.orders[order.ID] = &cp
	return nil
}

func (s *MemoryStore) ListOrdersByUser(_ context.Context, userID int64) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Order
	for _, o := range s.orders {
		if o.UserID != userID {
			continue
		}
		cp := *o
		cp.Items = nil
		result = append(result, cp)
	}
	// Newest first.
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (s *MemoryStore) GetOrderForUser(_ context.Context, orderID, userID int64) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	if !ok || o.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (s *MemoryStore) AddWishlistItem(_ context.Context, userID, productID int64) (*models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addWishlistItemLocked(userID, productID), nil
}

func (s *MemoryStore) addWishlistItemLocked(userID, productID int64) *models.WishlistItem {
	for _, it := range s.wishlists[userID] {
		if it.ProductID == productID {
			cp := *it
			return &cp
		}
	}
	s.nextWishlistID++
	item := &models.WishlistItem{
		ID:        s.nextWishlistID,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	s.wishlists[userID] = append(s.wishlists[userID], item)
	cp := *item
	return &cp
}

func (s *MemoryStore) RemoveWishlistItem(_ context.Context, userID, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeWishlistItemLocked(userID, productID)
	return nil
}

func (s *MemoryStore) removeWishlistItemLocked(userID, productID int64) bool {
	items := s.wishlists[userID]
	for i, it := range items {
		if it.ProductID == productID {
			s.wishlists[userID] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *MemoryStore) ToggleWishlistItem(_ context.Context, userID, productID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.removeWishlistItemLocked(userID, productID) {
		return false, nil
	}
	s.addWishlistItemLocked(userID, productID)
	return true, nil
}

func (s *MemoryStore) ListWishlist(_ context.Context, userID int64) ([]models.WishlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.wishlists[userID]
	result := make([]models.WishlistItem, 0, len(items))
	for _, it := range items {
		result = append(result, *it)
	}
	return result, nil
}

func (s *MemoryStore) HasWishlistItem(_ context.Context, userID, productID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.wishlists[userID] {
		if it.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) GetCart(_ context.Context, userID int64) ([]models.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	result := make([]models.CartLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, *l)
	}
	return result, nil
}

func (s *MemoryStore) AddCartLine(_ context.Context, userID, productID int64, quantity int) (*models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.carts[userID] {
		if l.ProductID == productID {
			l.Quantity += quantity
			l.UpdatedAt = time.Now()
			cp := *l
			return &cp, nil
		}
	}
	s.nextCartLineID++
	now := time.Now()
	line := &models.CartLine{
		ID:        s.nextCartLineID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.carts[userID] = append(s.carts[userID], line)
	cp := *line
	return &cp, nil
}

func (s *MemoryStore) SetCartLineQuantity(_ context.Context, userID, productID int64, quantity int) (*models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.carts[userID] {
		if l.ProductID == productID {
			l.Quantity = quantity
			l.UpdatedAt = time.Now()
			cp := *l
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) RemoveCartLine(_ context.Context, userID, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i, l := range lines {
		if l.ProductID == productID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ClearCart(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
