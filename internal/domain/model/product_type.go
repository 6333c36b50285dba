package model

// 商品種別。名前の一意性はDBではなくusecase側で守る。
type ProductType struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TypeName string `gorm:"type:varchar(255);not null" json:"typeName"`
}
