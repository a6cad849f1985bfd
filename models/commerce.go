package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Customer struct {
	TenantModel
	Name    string `gorm:"type:varchar(150);not null" json:"name"`
	Email   string `gorm:"type:varchar(191);index" json:"email"`
	Phone   string `gorm:"type:varchar(30)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type Product struct {
	TenantModel
	Name        string  `gorm:"type:varchar(200);not null" json:"name"`
	SKU         string  `gorm:"type:varchar(64);index" json:"sku"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(12,2);default:0" json:"price"`
	Stock       int     `gorm:"default:0" json:"stock"`
	Category    string  `gorm:"type:varchar(100);index" json:"category"`
	ImageURL    string  `gorm:"type:varchar(500)" json:"image_url"`
	IsActive    bool    `gorm:"index" json:"is_active"`
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if p.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if p.Stock < 0 {
		return errors.New("stock cannot be negative")
	}
	return nil
}

// OrderItem is one line of an order, stored inline with the order.
type OrderItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusShipped:    true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
}

type Order struct {
	TenantModel
	CustomerID uint                           `gorm:"index" json:"customer_id"`
	Status     string                         `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"`
	Total      float64                        `gorm:"type:decimal(12,2);default:0" json:"total"`
	Items      datatypes.JSONSlice[OrderItem] `json:"items"`
}

func (o *Order) Validate() error {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if !orderStatuses[o.Status] {
		return fmt.Errorf("unknown order status %q", o.Status)
	}
	for i, item := range o.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("items[%d]: quantity must be positive", i)
		}
	}
	if o.Total < 0 {
		return errors.New("total cannot be negative")
	}
	return nil
}

// Event is a time boxed storefront discount.
type Event struct {
	TenantModel
	Title           string    `gorm:"type:varchar(200);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	DiscountPercent float64   `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	IsActive        bool      `json:"is_active"`
}

func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("title is required")
	}
	if e.DiscountPercent < 0 || e.DiscountPercent > 100 {
		return errors.New("discount_percent must be between 0 and 100")
	}
	if !e.EndsAt.After(e.StartsAt) {
		return errors.New("ends_at must be after starts_at")
	}
	return nil
}

type Review struct {
	TenantModel
	ProductID    uint   `gorm:"index" json:"product_id"`
	CustomerName string `gorm:"type:varchar(150)" json:"customer_name"`
	Rating       int    `gorm:"not null" json:"rating"`
	Comment      string `gorm:"type:text" json:"comment"`
	IsApproved   bool   `gorm:"default:false;index" json:"is_approved"`
}

func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

type Notification struct {
	TenantModel
	Title   string `gorm:"type:varchar(200);not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	IsRead  bool   `gorm:"default:false;index" json:"is_read"`
}

func (n *Notification) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("title is required")
	}
	return nil
}
