package dto

// UserCountsResponse counts patient-like accounts by role.
type UserCountsResponse struct {
	Students  int64 `json:"students"`
	Teachers  int64 `json:"teachers"`
	Employees int64 `json:"employees"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}

type RoleResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ImportRowError struct {
	Row    int               `json:"row"`
	Email  string            `json:"email,omitempty"`
	Errors map[string]string `json:"errors"`
}

type ImportUsersResponse struct {
	Created int              `json:"created"`
	Failed  int              `json:"failed"`
	Errors  []ImportRowError `json:"errors"`
}
