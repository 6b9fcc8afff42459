package employee

// Ref is how other backend records point at an employee
type Ref struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Employee struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role,omitempty"`
	Status string `json:"status"`
}

const (
	StatusActive    = "Active"
	StatusNonActive = "Non-active"

	DefaultRole = "Designer"
)

// IsActive reports whether the employee can receive task assignments.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
