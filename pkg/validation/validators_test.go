package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestContactTag(t *testing.T) {
	cases := []struct {
		label string
		tag   string
		ok    bool
	}{
		{"Email", "email", true},
		{"email", "email", true},
		{" EMAIL ", "email", true},
		{"Phone", "valid_phone", true},
		{"Profile", "url", true},
		{"Fax", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		tag, ok := ContactTag(c.label)
		assert.Equal(t, c.ok, ok, "label %q", c.label)
		assert.Equal(t, c.tag, tag, "label %q", c.label)
	}
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	t.Run("valid_name", func(t *testing.T) {
		assert.NoError(t, v.Var("Jane", "valid_name"))
		assert.NoError(t, v.Var("O'Brien-Smith", "valid_name"))
		assert.NoError(t, v.Var("Renée", "valid_name"))
		assert.Error(t, v.Var("Jane<script>", "valid_name"))
		assert.Error(t, v.Var("Jane;DROP", "valid_name"))
	})

	t.Run("valid_phone", func(t *testing.T) {
		assert.NoError(t, v.Var("+4915123456789", "valid_phone"))
		assert.NoError(t, v.Var("5551234567", "valid_phone"))
		assert.Error(t, v.Var("123", "valid_phone"))
		assert.Error(t, v.Var("phone-number", "valid_phone"))
		assert.Error(t, v.Var("+49 151 2345", "valid_phone"))
	})
}
