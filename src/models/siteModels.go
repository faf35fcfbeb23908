package models

type SiteModel struct {
	Id     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Info   string `json:"info" gorm:"column:info;type:text;not null"`
	Photo  string `json:"photo" gorm:"column:photo;type:varchar(512);not null"`
	Rate   int    `json:"rate" gorm:"column:rate;not null"`
	Coords string `json:"coords" gorm:"column:coords;type:varchar(255);not null"`
}

// TableName keeps the table name used by the existing database.
func (SiteModel) TableName() string {
	return "tbsitios"
}
