package models

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/garagehub/servicing-app/utils"
)

var (
	reviewKeys        = []string{"reviewBody", "rating", "reviewedBy"}
	reviewUpdateKeys  = []string{"reviewBody", "rating", "reviewedBy", "_id"}
	orderKeys         = []string{"services", "createdAt", "fulfilledAt", "servicedBy"}
	orderUpdateKeys   = []string{"services"}
	serviceUpdateKeys = []string{"name", "price"}
	registerKeys      = []string{"username", "firstName", "lastName", "address", "contact", "password"}
	addressKeys       = []string{"addressLine", "postcode"}
	contactKeys       = []string{"phoneNumber", "email"}
	technicianKeys    = append([]string{"technician"}, registerKeys...)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("ukpostcode", func(fl validator.FieldLevel) bool {
		return utils.PostcodeRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("ukphone", func(fl validator.FieldLevel) bool {
		return utils.PhoneNumberRegex.MatchString(fl.Field().String())
	})
	return v
}

// keysMatch reports whether the received key set is exactly the expected one:
// same cardinality, same names, order-independent. Both slices are copied,
// sorted and compared entry by entry.
func keysMatch(provided, expected []string) bool {
	if len(provided) != len(expected) {
		return false
	}
	p := append([]string(nil), provided...)
	e := append([]string(nil), expected...)
	sort.Strings(p)
	sort.Strings(e)
	for i := range p {
		if p[i] != e[i] {
			return false
		}
	}
	return true
}

func payloadKeys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	return keys
}

func parseReviewFields(payload map[string]any) (Review, error) {
	body, ok := payload["reviewBody"].(string)
	if !ok {
		return Review{}, ErrBadRequest
	}
	rating, ok := payload["rating"].(float64)
	if !ok || rating < 0 || rating > 5 {
		return Review{}, ErrBadRequest
	}
	reviewer, ok := payload["reviewedBy"].(string)
	if !ok {
		return Review{}, ErrBadRequest
	}
	reviewerID, err := primitive.ObjectIDFromHex(reviewer)
	if err != nil {
		return Review{}, ErrBadRequest
	}
	return Review{ReviewBody: body, Rating: rating, ReviewedBy: reviewerID}, nil
}

// ParseReview validates a review creation payload: exactly
// {reviewBody, rating, reviewedBy}, with a string body, a numeric rating in
// [0, 5] and a reference-form reviewer id.
func ParseReview(payload map[string]any) (Review, error) {
	if !keysMatch(payloadKeys(payload), reviewKeys) {
		return Review{}, ErrBadRequest
	}
	return parseReviewFields(payload)
}

// ParseReviewUpdate validates a review patch payload: the creation fields
// plus the _id of the review being replaced.
func ParseReviewUpdate(payload map[string]any) (Review, error) {
	if !keysMatch(payloadKeys(payload), reviewUpdateKeys) {
		return Review{}, ErrBadRequest
	}
	rawID, ok := payload["_id"].(string)
	if !ok {
		return Review{}, ErrBadRequest
	}
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return Review{}, ErrBadRequest
	}
	rev, err := parseReviewFields(payload)
	if err != nil {
		return Review{}, err
	}
	rev.ID = id
	return rev, nil
}

// ParseServiceUpdate validates a technician service patch: exactly
// {name, price}.
func ParseServiceUpdate(payload map[string]any) (Service, error) {
	if !keysMatch(payloadKeys(payload), serviceUpdateKeys) {
		return Service{}, ErrBadRequest
	}
	name, ok := payload["name"].(string)
	if !ok || name == "" {
		return Service{}, ErrBadRequest
	}
	price, ok := payload["price"].(float64)
	if !ok {
		return Service{}, ErrBadRequest
	}
	return Service{Name: name, Price: price}, nil
}

// ParseServices validates the services array of a technician payload. Each
// entry needs a name and a numeric price; a description is optional.
func ParseServices(raw []any) ([]Service, error) {
	services := make([]Service, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, ErrBadRequest
		}
		svc := Service{}
		for k, v := range m {
			switch k {
			case "name":
				svc.Name, ok = v.(string)
			case "price":
				svc.Price, ok = v.(float64)
			case "description":
				svc.Description, ok = v.(string)
			default:
				ok = false
			}
			if !ok {
				return nil, ErrBadRequest
			}
		}
		if svc.Name == "" {
			return nil, ErrBadRequest
		}
		if _, present := m["price"]; !present {
			return nil, ErrBadRequest
		}
		services = append(services, svc)
	}
	return services, nil
}

// CheckOrderKeys validates an order creation payload's shape: exactly
// {services, createdAt, fulfilledAt, servicedBy}.
func CheckOrderKeys(payload map[string]any) error {
	if !keysMatch(payloadKeys(payload), orderKeys) {
		return ErrBadRequest
	}
	return nil
}

// CheckOrderUpdateKeys validates an order patch payload's shape: only
// {services} may be replaced.
func CheckOrderUpdateKeys(payload map[string]any) error {
	if !keysMatch(payloadKeys(payload), orderUpdateKeys) {
		return ErrBadRequest
	}
	return nil
}

// RegisterInput is the accepted body for registration and plain user
// creation. Field-level constraints ride on the shared Address and Contact
// types.
type RegisterInput struct {
	Username  string  `json:"username" validate:"required"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   Address `json:"address"`
	Contact   Contact `json:"contact"`
	Password  string  `json:"password" validate:"required"`
}

func checkProfileShape(payload map[string]any, expected []string) error {
	if !keysMatch(payloadKeys(payload), expected) {
		return ErrBadRequest
	}
	address, ok := payload["address"].(map[string]any)
	if !ok || !keysMatch(payloadKeys(address), addressKeys) {
		return ErrBadRequest
	}
	contact, ok := payload["contact"].(map[string]any)
	if !ok || !keysMatch(payloadKeys(contact), contactKeys) {
		return ErrBadRequest
	}
	return nil
}

// CheckRegisterShape validates the key set of a registration payload,
// including the nested address and contact shapes.
func CheckRegisterShape(payload map[string]any) error {
	return checkProfileShape(payload, registerKeys)
}

// ValidateRegister runs the field-level constraints on a parsed registration
// body: required username/email/password/phoneNumber, email format, UK
// phone and postcode patterns.
func ValidateRegister(in *RegisterInput) error {
	if err := validate.Struct(in); err != nil {
		return ErrBadRequest
	}
	return nil
}

// TechnicianInput is the accepted body for technician creation: the full
// profile shape plus a non-null technician sub-record.
type TechnicianInput struct {
	RegisterInput
	Technician *Technician `json:"technician"`
}

// ParseTechnicianCreate validates a technician creation payload. A payload
// whose technician field is explicitly null is malformed intent, not a
// customer registration.
func ParseTechnicianCreate(payload map[string]any) (*Technician, error) {
	if err := checkProfileShape(payload, technicianKeys); err != nil {
		return nil, err
	}
	raw, ok := payload["technician"].(map[string]any)
	if !ok || raw == nil {
		return nil, ErrBadRequest
	}
	tech := &Technician{Reviews: []Review{}, Services: []Service{}}
	for k, v := range raw {
		switch k {
		case "services":
			arr, ok := v.([]any)
			if !ok {
				return nil, ErrBadRequest
			}
			services, err := ParseServices(arr)
			if err != nil {
				return nil, err
			}
			tech.Services = services
		case "company":
			if tech.Company, ok = v.(string); !ok {
				return nil, ErrBadRequest
			}
		case "companyImage":
			if tech.CompanyImage, ok = v.(string); !ok {
				return nil, ErrBadRequest
			}
		default:
			return nil, ErrBadRequest
		}
	}
	return tech, nil
}
