package models

// All lists every table the service migrates.
func All() []any {
	return []any{&SiteModel{}, &CommentModel{}, &UserModel{}}
}
