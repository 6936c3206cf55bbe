package domain

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	ID           int32    `json:"id"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Role         UserRole `json:"role"`
	CustomerID   *int32   `json:"customer_id,omitempty"` // set for customer accounts
	CreatedOn    string   `json:"created_on"`
	UpdatedOn    string   `json:"updated_on"`
}
