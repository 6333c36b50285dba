package model

import "time"

type Order struct {
	ID           int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64         `gorm:"not null;index" json:"userId"`
	OrderDate    time.Time     `gorm:"not null;index" json:"orderDate"`
	TotalAmount  int64         `gorm:"not null" json:"totalAmount"`
	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID" json:"orderDetails,omitempty"`
}

type OrderDetail struct {
	ID            int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64 `gorm:"not null;index" json:"orderId"`
	ProductTypeID int64 `gorm:"not null;index" json:"productTypeId"`
	Quantity      int64 `gorm:"not null" json:"quantity"`
	// 注文時点のProductPrice.Priceのスナップショット。以後変更しない。
	Price       int64        `gorm:"not null" json:"price"`
	ProductType *ProductType `gorm:"foreignKey:ProductTypeID" json:"productType,omitempty"`
}
