package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		FullName:   "Budi Santoso",
		Email:      "budi@example.com",
		Phone:      "08123456789",
		Address:    "Jl. Malioboro No. 1",
		Province:   "DI Yogyakarta",
		City:       "Yogyakarta",
		PostalCode: "55213",
		AgreeTerms: true,
	}
}

func TestValidate_ValidForm(t *testing.T) {
	form := validForm()
	assert.NoError(t, form.Validate())
}

func TestValidate_FirstFailingRuleWins(t *testing.T) {
	form := validForm()
	form.FullName = ""
	form.Email = "not-an-email"

	err := form.Validate()
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "full_name", vErr.Field, "missing name must be reported before the bad email")
}

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		field string
		mut   func(*Form)
	}{
		{"full_name", func(f *Form) { f.FullName = "" }},
		{"email", func(f *Form) { f.Email = "  " }},
		{"phone", func(f *Form) { f.Phone = "" }},
		{"address", func(f *Form) { f.Address = "" }},
		{"province", func(f *Form) { f.Province = "" }},
		{"city", func(f *Form) { f.City = "" }},
		{"postal_code", func(f *Form) { f.PostalCode = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			form := validForm()
			tc.mut(&form)

			var vErr *ValidationError
			require.ErrorAs(t, form.Validate(), &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestValidate_AgreeTermsRequired(t *testing.T) {
	form := validForm()
	form.AgreeTerms = false

	var vErr *ValidationError
	require.ErrorAs(t, form.Validate(), &vErr)
	assert.Equal(t, "agree_terms", vErr.Field)
}

func TestValidate_Email(t *testing.T) {
	form := validForm()
	form.Email = "budi@@example"

	var vErr *ValidationError
	require.ErrorAs(t, form.Validate(), &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestValidate_Phone(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"08123456789", true},
		{"0812 3456 789", true},
		{"0812-3456-789", true},
		{"+628123456789", true},
		{"628123456789", true},
		{"12345", false},
		{"01234567", false}, // second digit must be 2-9
		{"0812", false},
	}

	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			form := validForm()
			form.Phone = tc.phone

			err := form.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "phone", vErr.Field)
			}
		})
	}
}

func TestValidate_PostalCode(t *testing.T) {
	for _, bad := range []string{"1234", "123456", "5521a"} {
		form := validForm()
		form.PostalCode = bad

		var vErr *ValidationError
		require.ErrorAs(t, form.Validate(), &vErr)
		assert.Equal(t, "postal_code", vErr.Field)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+628123456789", NormalizePhone("+62 812-3456-789"))
	assert.Equal(t, "08123456789", NormalizePhone("0812 345 6789"))
}
