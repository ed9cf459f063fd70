package models

// UpsertUserRequest represents the form fields submitted from the user form.
// Email is the natural key for the upsert; any id in the request path is
// informational only.
type UpsertUserRequest struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required,email"`
}
