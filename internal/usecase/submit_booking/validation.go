package submit_booking

import (
	"regexp"
	"strings"

	"github.com/abarriera/CPA-BookingService/internal/domain"
)

// Deliberately loose. The form is a first contact point, catching
// obvious typos is enough.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func validate(req *Request) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Email is invalid"
	}

	if strings.TrimSpace(req.Phone) == "" {
		errs["phone"] = "Phone is required"
	}

	// Клиентская форма шлет значения из фиксированного каталога, все
	// остальное считается пустым выбором
	if !domain.IsValidService(strings.TrimSpace(req.Service)) {
		errs["service"] = "Please select a service"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
