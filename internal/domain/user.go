package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Roles accepted at registration.
const (
	RoleSeeker        = "seeker"
	RoleServiceSeeker = "serviceSeeker"
	RoleEmployer      = "employer"
)

// User is an account on the platform. Structured sub-fields are stored
// as encoded text columns and decoded on read; Password never leaves
// the repository layer in API responses.
type User struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Password           string        `json:"-"`
	Role               string        `json:"role"`
	PhoneIntl          *string       `json:"phoneIntl"`
	City               *string       `json:"city"`
	Career             *string       `json:"career"`
	Specialty          *string       `json:"specialty"`
	Summary            *string       `json:"summary"`
	Languages          []interface{} `json:"languages"`
	Certificates       []interface{} `json:"certificates"`
	Skills             []interface{} `json:"skills"`
	Experiences        []interface{} `json:"experiences"`
	ServiceCategories  []interface{} `json:"serviceCategories"`
	PreviousWorks      []interface{} `json:"previousWorks"`
	Reviews            []Review      `json:"reviews"`
	Rating             *float64      `json:"rating"`
	IsProfilePublic    bool          `json:"isProfilePublic"`
	CompanyName        *string       `json:"companyName"`
	TaxID              *string       `json:"taxId"`
	IsEmployerVerified bool          `json:"isEmployerVerified"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// Review is one entry in a user's review list. Author is resolved
// server-side from the caller's account, never taken from the payload.
// Rating travels as a string inside the stored list and is parsed back
// when the average is recomputed.
type Review struct {
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Rating  string `json:"rating"`
	Date    string `json:"date"`
}

// UnmarshalJSON accepts ratings stored as either a string or a bare
// number, so one legacy numeric entry cannot fail the whole list.
func (r *Review) UnmarshalJSON(data []byte) error {
	type review Review
	aux := struct {
		Rating json.RawMessage `json:"rating"`
		*review
	}{review: (*review)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Rating) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(aux.Rating, &s); err == nil {
		r.Rating = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(aux.Rating, &n); err == nil {
		r.Rating = n.String()
	}
	return nil
}

// UserUpdate carries the recognized fields of a profile update.
type UserUpdate struct {
	Name              Optional[string]        `json:"name"`
	PhoneIntl         Optional[string]        `json:"phoneIntl"`
	City              Optional[string]        `json:"city"`
	Career            Optional[string]        `json:"career"`
	Specialty         Optional[string]        `json:"specialty"`
	Summary           Optional[string]        `json:"summary"`
	Languages         Optional[[]interface{}] `json:"languages"`
	Certificates      Optional[[]interface{}] `json:"certificates"`
	Skills            Optional[[]interface{}] `json:"skills"`
	Experiences       Optional[[]interface{}] `json:"experiences"`
	ServiceCategories Optional[[]interface{}] `json:"serviceCategories"`
	PreviousWorks     Optional[[]interface{}] `json:"previousWorks"`
	IsProfilePublic   Optional[bool]          `json:"isProfilePublic"`
	CompanyName       Optional[string]        `json:"companyName"`
	TaxID             Optional[string]        `json:"taxId"`
}

// UserFilter narrows the public user listing.
type UserFilter struct {
	Role            string
	City            string
	IsProfilePublic *bool
	Search          string
}

type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateProfile(ctx context.Context, id string, upd *UserUpdate) error
	UpdatePassword(ctx context.Context, id, hashed string) error
	UpdateReviews(ctx context.Context, id string, reviews []Review, avgRating float64) error
	Delete(ctx context.Context, id string) error
}

type UserUsecase interface {
	List(ctx context.Context, filter UserFilter) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, callerID, targetID string, upd *UserUpdate) error
	AddReview(ctx context.Context, callerID, targetID string, rating float64, comment string) (float64, error)
	Delete(ctx context.Context, callerID, targetID string) error
}
