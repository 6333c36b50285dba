package model

import "time"

// 価格改定の1回分。作成後は不変（履歴は追記のみ）。
type PricingBatch struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	CreatedAt     time.Time      `gorm:"not null;index" json:"createdAt"`
	ProductPrices []ProductPrice `gorm:"foreignKey:PricingBatchID" json:"productPrices,omitempty"`
}

// バッチ内の1商品種別の価格。(product_type_id, pricing_batch_id)で一意。
type ProductPrice struct {
	ID             int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductTypeID  int64        `gorm:"not null;uniqueIndex:idx_price_type_batch" json:"productTypeId"`
	PricingBatchID int64        `gorm:"not null;uniqueIndex:idx_price_type_batch;index" json:"pricingBatchId"`
	Price          int64        `gorm:"not null" json:"price"`
	CreatedAt      time.Time    `gorm:"not null" json:"createdAt"`
	ProductType    *ProductType `gorm:"foreignKey:ProductTypeID" json:"productType,omitempty"`
}
