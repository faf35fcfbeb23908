package dtos

// CreateCommentRequest is the body of POST /comentarios/:id_sitio.
// The site id always comes from the path.
type CreateCommentRequest struct {
	Comment string `json:"comment" form:"comment" binding:"required"`
	User    string `json:"user" form:"user"`
}
