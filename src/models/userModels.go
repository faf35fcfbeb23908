package models

type UserModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:varchar(255);not null;uniqueIndex"`
	Password string `json:"password" gorm:"column:password;type:varchar(255);not null"`
}

func (UserModel) TableName() string {
	return "tbusuarios"
}
