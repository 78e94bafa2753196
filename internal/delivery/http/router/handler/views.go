// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
)

// The view types below are the JSON shapes returned to clients. They exist
// so internal fields, the password hash above all, never leak into a
// response body.

// UserView is the public JSON shape of an account.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProductCount *int64 `json:"productCount,omitempty"`
	ReviewCount  *int64 `json:"reviewCount,omitempty"`
	OrderCount   *int64 `json:"orderCount,omitempty"`
	MessageCount *int64 `json:"messageCount,omitempty"`
}

// NewUserView converts a user entity into its response shape.
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Address:   user.Address,
		Avatar:    user.Avatar,
		Role:      user.Role.String(),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserViewWithCounts includes the dependent-row counts loaded alongside
// the account.
func NewUserViewWithCounts(user *entity.User) *UserView {
	view := NewUserView(user)
	if view == nil {
		return nil
	}

	view.ProductCount = &user.ProductCount
	view.ReviewCount = &user.ReviewCount
	view.OrderCount = &user.OrderCount
	view.MessageCount = &user.MessageCount

	return view
}

// NewUserViews converts a slice of accounts.
func NewUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, NewUserView(user))
	}

	return views
}

// UserStatsView is the JSON shape of the account statistics endpoint.
type UserStatsView struct {
	TotalProducts    int64   `json:"totalProducts"`
	ApprovedProducts int64   `json:"approvedProducts"`
	PendingProducts  int64   `json:"pendingProducts"`
	InactiveProducts int64   `json:"inactiveProducts"`
	TotalReviews     int64   `json:"totalReviews"`
	AverageRating    float64 `json:"averageRating"`
	TotalMessages    int64   `json:"totalMessages"`
}

// NewUserStatsView converts user statistics into their response shape.
func NewUserStatsView(stats *entity.UserStats) *UserStatsView {
	if stats == nil {
		return nil
	}

	return &UserStatsView{
		TotalProducts:    stats.TotalProducts,
		ApprovedProducts: stats.ApprovedProducts,
		PendingProducts:  stats.PendingProducts,
		InactiveProducts: stats.InactiveProducts,
		TotalReviews:     stats.TotalReviews,
		AverageRating:    stats.AverageRating,
		TotalMessages:    stats.TotalMessages,
	}
}

// CategoryView is the JSON shape of a category.
type CategoryView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Image        string    `json:"image,omitempty"`
	IsActive     bool      `json:"isActive"`
	ProductCount int64     `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewCategoryView converts a category entity into its response shape.
func NewCategoryView(category *entity.Category) *CategoryView {
	if category == nil {
		return nil
	}

	return &CategoryView{
		ID:           category.ID,
		Name:         category.Name,
		Description:  category.Description,
		Image:        category.Image,
		IsActive:     category.IsActive,
		ProductCount: category.ProductCount,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}

// NewCategoryViews converts a slice of categories.
func NewCategoryViews(categories []*entity.Category) []*CategoryView {
	views := make([]*CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, NewCategoryView(category))
	}

	return views
}

// ProductView is the JSON shape of a product, with the rating aggregate
// computed from its loaded reviews.
type ProductView struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	Images        []string      `json:"images"`
	Stock         int           `json:"stock"`
	CategoryID    uuid.UUID     `json:"categoryId"`
	SellerID      uuid.UUID     `json:"sellerId"`
	IsApproved    bool          `json:"isApproved"`
	IsActive      bool          `json:"isActive"`
	AverageRating float64       `json:"averageRating"`
	ReviewCount   int           `json:"reviewCount"`
	Category      *CategoryView `json:"category,omitempty"`
	Seller        *UserView     `json:"seller,omitempty"`
	Reviews       []*ReviewView `json:"reviews,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NewProductView converts a product entity into its response shape.
// Reviews are included only on the detail view.
func NewProductView(product *entity.Product, includeReviews bool) *ProductView {
	if product == nil {
		return nil
	}

	view := &ProductView{
		ID:            product.ID,
		Title:         product.Title,
		Description:   product.Description,
		Price:         product.Price,
		Images:        product.Images,
		Stock:         product.Stock,
		CategoryID:    product.CategoryID,
		SellerID:      product.SellerID,
		IsApproved:    product.IsApproved,
		IsActive:      product.IsActive,
		AverageRating: product.AverageRating(),
		ReviewCount:   product.ReviewCount(),
		Category:      NewCategoryView(product.Category),
		Seller:        NewUserView(product.Seller),
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}

	if includeReviews {
		for _, review := range product.Reviews {
			view.Reviews = append(view.Reviews, NewReviewView(review))
		}
	}

	return view
}

// NewProductViews converts a slice of products for list responses.
func NewProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, NewProductView(product, false))
	}

	return views
}

// ReviewView is the JSON shape of a review.
type ReviewView struct {
	ID        uuid.UUID    `json:"id"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment,omitempty"`
	ProductID uuid.UUID    `json:"productId"`
	UserID    uuid.UUID    `json:"userId"`
	User      *UserView    `json:"user,omitempty"`
	Product   *ProductView `json:"product,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewReviewView converts a review entity into its response shape.
func NewReviewView(review *entity.Review) *ReviewView {
	if review == nil {
		return nil
	}

	return &ReviewView{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		User:      NewUserView(review.User),
		Product:   NewProductView(review.Product, false),
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// NewReviewViews converts a slice of reviews.
func NewReviewViews(reviews []*entity.Review) []*ReviewView {
	views := make([]*ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, NewReviewView(review))
	}

	return views
}

// OrderView is the JSON shape of an order.
type OrderView struct {
	ID         uuid.UUID    `json:"id"`
	Quantity   int          `json:"quantity"`
	TotalPrice float64      `json:"totalPrice"`
	Status     string       `json:"status"`
	ProductID  uuid.UUID    `json:"productId"`
	BuyerID    uuid.UUID    `json:"buyerId"`
	Product    *ProductView `json:"product,omitempty"`
	Buyer      *UserView    `json:"buyer,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// NewOrderView converts an order entity into its response shape.
func NewOrderView(order *entity.Order) *OrderView {
	if order == nil {
		return nil
	}

	return &OrderView{
		ID:         order.ID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     order.Status.String(),
		ProductID:  order.ProductID,
		BuyerID:    order.BuyerID,
		Product:    NewProductView(order.Product, false),
		Buyer:      NewUserView(order.Buyer),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

// NewOrderViews converts a slice of orders.
func NewOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, NewOrderView(order))
	}

	return views
}

// MessageView is the JSON shape of a contact message.
type MessageView struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"senderId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"isRead"`
	Sender     *UserView `json:"sender,omitempty"`
	Receiver   *UserView `json:"receiver,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewMessageView converts a message entity into its response shape.
func NewMessageView(message *entity.ContactMessage) *MessageView {
	if message == nil {
		return nil
	}

	return &MessageView{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Subject:    message.Subject,
		Message:    message.Message,
		IsRead:     message.IsRead,
		Sender:     NewUserView(message.Sender),
		Receiver:   NewUserView(message.Receiver),
		CreatedAt:  message.CreatedAt,
		UpdatedAt:  message.UpdatedAt,
	}
}

// NewMessageViews converts a slice of messages.
func NewMessageViews(messages []*entity.ContactMessage) []*MessageView {
	views := make([]*MessageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, NewMessageView(message))
	}

	return views
}

// DashboardView is the JSON shape of the admin dashboard.
type DashboardView struct {
	TotalUsers      int64            `json:"totalUsers"`
	TotalProducts   int64            `json:"totalProducts"`
	TotalOrders     int64            `json:"totalOrders"`
	TotalCategories int64            `json:"totalCategories"`
	PendingProducts int64            `json:"pendingProducts"`
	TotalRevenue    float64          `json:"totalRevenue"`
	RecentOrders    []*OrderView     `json:"recentOrders"`
	TopProducts     []*ProductView   `json:"topProducts"`
	UsersByRole     map[string]int64 `json:"usersByRole"`
}

// NewDashboardView converts dashboard statistics into their response shape.
func NewDashboardView(stats *usecase.DashboardStats) *DashboardView {
	usersByRole := make(map[string]int64, len(stats.UsersByRole))
	for role, count := range stats.UsersByRole {
		usersByRole[role.String()] = count
	}

	return &DashboardView{
		TotalUsers:      stats.TotalUsers,
		TotalProducts:   stats.TotalProducts,
		TotalOrders:     stats.TotalOrders,
		TotalCategories: stats.TotalCategories,
		PendingProducts: stats.PendingProducts,
		TotalRevenue:    stats.WeeklyRevenue,
		RecentOrders:    NewOrderViews(stats.RecentOrders),
		TopProducts:     NewProductViews(stats.TopProducts),
		UsersByRole:     usersByRole,
	}
}
