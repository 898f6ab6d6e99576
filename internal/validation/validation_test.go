package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type companyInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	ABN     string `json:"abn" validate:"required,len=11,number"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
}

func TestStruct(t *testing.T) {
	v := New()

	t.Run("valid input", func(t *testing.T) {
		errs := v.Struct(&companyInput{Name: "Acme", ABN: "12345678901", Email: "a@example.com", Address: "1 Road"})
		assert.Nil(t, errs)
	})

	t.Run("missing fields use wire names", func(t *testing.T) {
		errs := v.Struct(&companyInput{})
		m := errs.Map()

		assert.Len(t, errs, 4)
		assert.Equal(t, "name is a required field", m["name"])
		assert.Equal(t, "abn is a required field", m["abn"])
		assert.Equal(t, "email is a required field", m["email"])
		assert.Equal(t, "address is a required field", m["address"])
		assert.Equal(t, "name", errs[0].Field, "errors keep declaration order")
	})

	t.Run("abn length", func(t *testing.T) {
		errs := v.Struct(&companyInput{Name: "Acme", ABN: "123", Email: "a@example.com", Address: "1 Road"})
		assert.Equal(t, "abn must be 11 characters in length", errs.Map()["abn"])
	})

	t.Run("abn digits only", func(t *testing.T) {
		errs := v.Struct(&companyInput{Name: "Acme", ABN: "+1234567890", Email: "a@example.com", Address: "1 Road"})
		assert.Equal(t, "abn must contain only digits", errs.Map()["abn"])

		errs = v.Struct(&companyInput{Name: "Acme", ABN: "1234567.901", Email: "a@example.com", Address: "1 Road"})
		assert.Equal(t, "abn must contain only digits", errs.Map()["abn"])
	})

	t.Run("invalid email", func(t *testing.T) {
		errs := v.Struct(&companyInput{Name: "Acme", ABN: "12345678901", Email: "not-an-email", Address: "1 Road"})
		assert.Equal(t, "email must be a valid email address", errs.Map()["email"])
	})
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "name has already been taken", UniqueMessage("name"))
	assert.Equal(t, "selected company_id is invalid", ExistsMessage("company_id"))
}
