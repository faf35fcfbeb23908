package models

// DefaultCommentUser is stored when a comment is posted without an author.
const DefaultCommentUser = "anonimo"

type CommentModel struct {
	Id      int    `json:"id" gorm:"primaryKey;autoIncrement"`
	IdSitio int    `json:"id_sitio" gorm:"column:id_sitio;not null;index"`
	Comment string `json:"comment" gorm:"column:comment;type:text;not null"`
	User    string `json:"user" gorm:"column:user;type:varchar(255);not null;default:anonimo"`
}

func (CommentModel) TableName() string {
	return "tbcomentarios"
}
