package intake

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// SubmitInput is one public application form submission. IPAddress,
// UserAgent and Referrer are always overwritten from the HTTP request.
type SubmitInput struct {
	ProjectType        string  `json:"projectType"        validate:"required,max=100"`
	ProjectDescription string  `json:"projectDescription" validate:"required,max=5000"`
	Timeline           string  `json:"timeline"           validate:"required,max=100"`
	TradeType          string  `json:"tradeType"          validate:"required,max=100"`
	TradeDescription   string  `json:"tradeDescription"   validate:"required,max=5000"`
	Name               string  `json:"name"               validate:"required,max=200"`
	Email              string  `json:"email"              validate:"required,email,max=254"`
	Website            *string `json:"website"            validate:"omitempty,url,max=500"`
	AdditionalInfo     *string `json:"additionalInfo"     validate:"omitempty,max=5000"`

	IPAddress string  `json:"ipAddress" validate:"required,max=64"`
	UserAgent string  `json:"userAgent" validate:"max=1000"`
	Referrer  *string `json:"referrer"  validate:"omitempty,max=2000"`
}

// newValidator returns a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// normalize trims every field and turns blank optional fields into nil.
func (i SubmitInput) normalize() SubmitInput {
	i.ProjectType = strings.TrimSpace(i.ProjectType)
	i.ProjectDescription = strings.TrimSpace(i.ProjectDescription)
	i.Timeline = strings.TrimSpace(i.Timeline)
	i.TradeType = strings.TrimSpace(i.TradeType)
	i.TradeDescription = strings.TrimSpace(i.TradeDescription)
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.Website = trimOrNil(i.Website)
	i.AdditionalInfo = trimOrNil(i.AdditionalInfo)
	i.IPAddress = strings.TrimSpace(i.IPAddress)
	i.UserAgent = strings.TrimSpace(i.UserAgent)
	i.Referrer = trimOrNil(i.Referrer)
	return i
}

// validate runs the struct tags and converts failures to a domain.ValidationError.
func (i SubmitInput) validate(v *validator.Validate) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate submission: %w", err)
	}

	errs := make(domain.FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		errs.Add(fe.Field(), fieldMessage(fe))
	}
	return errs.Err()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "max":
		return "max " + fe.Param() + " characters"
	default:
		return "invalid value"
	}
}

func (i SubmitInput) toDomain() *domain.Application {
	return &domain.Application{
		ProjectType:        i.ProjectType,
		ProjectDescription: i.ProjectDescription,
		Timeline:           i.Timeline,
		TradeType:          i.TradeType,
		TradeDescription:   i.TradeDescription,
		Name:               i.Name,
		Email:              i.Email,
		Website:            i.Website,
		AdditionalInfo:     i.AdditionalInfo,
		IPAddress:          i.IPAddress,
		UserAgent:          i.UserAgent,
		Referrer:           i.Referrer,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
