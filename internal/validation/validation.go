// Package validation checks submitted client payloads against one of two
// profiles: the public contact form or the dashboard form. Both share the
// same base rules; the profiles differ only in phone length, budget
// strictness, and whether status is accepted.
package validation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"unicode/utf8"

	"client-hub/internal/domain/client"
)

// Profile selects which rule overrides apply to a payload.
type Profile int

const (
	// ProfileContact is the public signup form: phone must look like a
	// real phone number and budget may be zero.
	ProfileContact Profile = iota
	// ProfileDashboard is the internal form: phone only has to be
	// non-empty, budget must be strictly positive, and status is required.
	ProfileDashboard
)

const (
	minNameLength         = 2
	minContactPhoneLength = 10

	fieldName        = "name"
	fieldEmail       = "email"
	fieldPhone       = "phone"
	fieldProjectType = "projectType"
	fieldBudget      = "budget"
	fieldStatus      = "status"

	msgRequired           = "Required"
	msgNameTooShort       = "Name must be at least 2 characters."
	msgEmailInvalid       = "Please enter a valid email."
	msgPhoneTooShort      = "Please enter a valid phone number."
	msgPhoneRequired      = "Please enter a phone number."
	msgProjectTypeInvalid = "Please select a valid project type."
	msgStatusInvalid      = "Please select a valid status."
	msgBudgetNotANumber   = "Budget must be a number."
	msgBudgetNegative     = "Budget must be a positive number."
	msgBudgetNotPositive  = "Budget must be greater than zero."
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldErrors maps a payload field to the ordered list of messages it
// violated. An empty map means the payload passed.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// ParseClient validates an untyped payload against the given profile and
// returns the coerced input on success. Malformed payloads are a normal
// failure result, never a panic: a nil payload reports every required
// field. On the contact profile the returned Status is left empty for the
// caller to force.
func ParseClient(payload map[string]interface{}, profile Profile) (client.Input, FieldErrors) {
	var in client.Input
	errs := FieldErrors{}

	if name, ok := stringField(payload, fieldName); !ok {
		errs.add(fieldName, msgRequired)
	} else if utf8.RuneCountInString(name) < minNameLength {
		errs.add(fieldName, msgNameTooShort)
	} else {
		in.Name = name
	}

	if email, ok := stringField(payload, fieldEmail); !ok {
		errs.add(fieldEmail, msgRequired)
	} else if !emailRegex.MatchString(email) {
		errs.add(fieldEmail, msgEmailInvalid)
	} else {
		in.Email = email
	}

	minPhone, msgPhone := minContactPhoneLength, msgPhoneTooShort
	if profile == ProfileDashboard {
		minPhone, msgPhone = 1, msgPhoneRequired
	}
	if phone, ok := stringField(payload, fieldPhone); !ok {
		errs.add(fieldPhone, msgRequired)
	} else if utf8.RuneCountInString(phone) < minPhone {
		errs.add(fieldPhone, msgPhone)
	} else {
		in.Phone = phone
	}

	if pt, ok := stringField(payload, fieldProjectType); !ok {
		errs.add(fieldProjectType, msgRequired)
	} else if !client.ValidProjectType(pt) {
		errs.add(fieldProjectType, msgProjectTypeInvalid)
	} else {
		in.ProjectType = client.ProjectType(pt)
	}

	if raw, ok := field(payload, fieldBudget); !ok {
		errs.add(fieldBudget, msgRequired)
	} else if budget, ok := coerceNumber(raw); !ok {
		errs.add(fieldBudget, msgBudgetNotANumber)
	} else if profile == ProfileDashboard && !(budget > 0) {
		// The dashboard path rejects zero while the public path accepts
		// it. Divergence inherited from the product forms; kept per path.
		errs.add(fieldBudget, msgBudgetNotPositive)
	} else if profile == ProfileContact && !(budget >= 0) {
		errs.add(fieldBudget, msgBudgetNegative)
	} else {
		in.Budget = budget
	}

	if profile == ProfileDashboard {
		if status, ok := stringField(payload, fieldStatus); !ok {
			errs.add(fieldStatus, msgRequired)
		} else if !client.ValidStatus(status) {
			errs.add(fieldStatus, msgStatusInvalid)
		} else {
			in.Status = client.Status(status)
		}
	}

	if len(errs) > 0 {
		return client.Input{}, errs
	}
	return in, nil
}

func field(payload map[string]interface{}, key string) (interface{}, bool) {
	if payload == nil {
		return nil, false
	}
	v, ok := payload[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func stringField(payload map[string]interface{}, key string) (string, bool) {
	v, ok := field(payload, key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// coerceNumber accepts the shapes a JSON body can carry a budget in:
// a number, a numeric string, or a json.Number.
func coerceNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
