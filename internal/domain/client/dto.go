package client

import (
	"strings"

	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
)

// SaveClientRequest is used for both create and update; ID is empty on create.
type SaveClientRequest struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (r *SaveClientRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)

	if r.Name == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !validator.IsInSlice(r.Category, Categories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(Categories, ", "),
		})
	}

	if r.ID != "" && !validator.IsValidObjectID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid identifier",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func ToResponses(list []Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ClientResponse(c))
	}
	return out
}
