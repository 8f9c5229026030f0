package validate

import "time"

const dateLayout = "2006-01-02"

// LoanForm carries the fields of the request submission form.
type LoanForm struct {
	TypeRequest string `json:"typeRequest" form:"typeRequest"`
	Responsible string `json:"responsible" form:"responsible"`
	ReturnDate  string `json:"returnDate" form:"returnDate"`
	Description string `json:"description" form:"description"`
}

// LoanRequestForm validates the whole form at once and returns a map of
// field name to violated rule. An empty map means the form is valid. Keeping
// the result in one place avoids per-field flags drifting apart.
func LoanRequestForm(f LoanForm) map[string]Kind {
	violations := make(map[string]Kind)
	if f.TypeRequest == "" {
		violations["typeRequest"] = Required
	}
	if f.Responsible == "" {
		violations["responsible"] = Required
	}
	if f.ReturnDate == "" {
		violations["returnDate"] = Required
	} else if kind := checkDate(f.ReturnDate, time.Now()); kind != "" {
		violations["returnDate"] = kind
	}
	return violations
}

// ReturnDate validates a return-date amendment: a calendar date no earlier
// than today.
func ReturnDate(date string) error {
	if date == "" {
		return &Error{Kind: Required, Message: "La fecha es requerida."}
	}
	switch checkDate(date, time.Now()) {
	case InvalidDate:
		return &Error{Kind: InvalidDate, Message: "La fecha no tiene un formato válido."}
	case PastDate:
		return &Error{Kind: PastDate, Message: "La fecha debe ser igual o mayor a la fecha actual."}
	}
	return nil
}

func checkDate(date string, now time.Time) Kind {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return InvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(today) {
		return PastDate
	}
	return ""
}
