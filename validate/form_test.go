package validate

import (
	"errors"
	"testing"
	"time"
)

func validForm() LoanForm {
	return LoanForm{
		TypeRequest: "laboratorio",
		Responsible: "Ing. Paredes",
		ReturnDate:  time.Now().AddDate(0, 0, 7).Format(dateLayout),
	}
}

func TestLoanRequestFormValid(t *testing.T) {
	if violations := LoanRequestForm(validForm()); len(violations) != 0 {
		t.Errorf("Expected no violations, got %v", violations)
	}
}

func TestLoanRequestFormMissingFields(t *testing.T) {
	violations := LoanRequestForm(LoanForm{})
	for _, field := range []string{"typeRequest", "responsible", "returnDate"} {
		if violations[field] != Required {
			t.Errorf("Field %s: got %q, want %q", field, violations[field], Required)
		}
	}
	if len(violations) != 3 {
		t.Errorf("Expected 3 violations, got %v", violations)
	}
}

func TestLoanRequestFormPastDate(t *testing.T) {
	f := validForm()
	f.ReturnDate = "2020-01-15"
	violations := LoanRequestForm(f)
	if violations["returnDate"] != PastDate {
		t.Errorf("Expected past_date violation, got %v", violations)
	}
}

func TestLoanRequestFormDescriptionOptional(t *testing.T) {
	f := validForm()
	f.Description = ""
	if violations := LoanRequestForm(f); len(violations) != 0 {
		t.Errorf("Description should be optional, got %v", violations)
	}
}

func TestReturnDate(t *testing.T) {
	today := time.Now().Format(dateLayout)
	if err := ReturnDate(today); err != nil {
		t.Errorf("Today should be accepted: %v", err)
	}

	cases := []struct {
		date string
		kind Kind
	}{
		{"", Required},
		{"15-01-2030", InvalidDate},
		{"not a date", InvalidDate},
		{"2019-06-01", PastDate},
	}
	for _, tc := range cases {
		err := ReturnDate(tc.date)
		var verr *Error
		if !errors.As(err, &verr) {
			t.Fatalf("ReturnDate(%q) returned %v, want *validate.Error", tc.date, err)
		}
		if verr.Kind != tc.kind {
			t.Errorf("ReturnDate(%q) kind = %s, want %s", tc.date, verr.Kind, tc.kind)
		}
	}
}
