package checkout

import (
	"fmt"
	"regexp"
	"strings"
)

// Form is the customer-filled checkout form.
type Form struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Province        string `json:"province"`
	City            string `json:"city"`
	PostalCode      string `json:"postal_code"`
	AgreeTerms      bool   `json:"agree_terms"`
	AgreeNewsletter bool   `json:"agree_newsletter"`
}

// ValidationError carries a single user-facing message for the first rule
// that failed. Errors are never aggregated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indonesian mobile numbers, after stripping spaces and dashes.
	phonePattern  = regexp.MustCompile(`^(\+62|62|0)[2-9][0-9]{7,11}$`)
	postalPattern = regexp.MustCompile(`^[0-9]{5}$`)
)

// Validate checks the form field by field; the first failing rule wins.
func (f *Form) Validate() error {
	required := []struct {
		field, value, label string
	}{
		{"full_name", f.FullName, "Nama lengkap"},
		{"email", f.Email, "Email"},
		{"phone", f.Phone, "Nomor telepon"},
		{"address", f.Address, "Alamat"},
		{"province", f.Province, "Provinsi"},
		{"city", f.City, "Kota"},
		{"postal_code", f.PostalCode, "Kode pos"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{
				Field:   r.field,
				Message: fmt.Sprintf("%s wajib diisi", r.label),
			}
		}
	}

	if !f.AgreeTerms {
		return &ValidationError{
			Field:   "agree_terms",
			Message: "Anda harus menyetujui syarat dan ketentuan",
		}
	}

	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{
			Field:   "email",
			Message: "Format email tidak valid",
		}
	}

	if !phonePattern.MatchString(NormalizePhone(f.Phone)) {
		return &ValidationError{
			Field:   "phone",
			Message: "Format nomor telepon tidak valid",
		}
	}

	if !postalPattern.MatchString(f.PostalCode) {
		return &ValidationError{
			Field:   "postal_code",
			Message: "Kode pos harus 5 digit",
		}
	}

	return nil
}

// NormalizePhone strips the spaces and dashes customers tend to type.
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	return strings.ReplaceAll(phone, "-", "")
}
