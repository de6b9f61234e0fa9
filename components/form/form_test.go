package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Int(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "should parse number", value: "12", want: 12},
		{name: "should treat empty value as 0", value: "", want: 0},
		{name: "should trim spaces", value: " 7 ", want: 7},
		{name: "should reject non numeric value", value: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Int(url.Values{"max_events": {tt.value}}, "max_events", "Max events")
			if tt.wantErr {
				assert.EqualError(t, err, "Max events must be a whole number")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func Test_Float(t *testing.T) {
	n, err := Float(url.Values{"price": {"49.99"}}, "price", "Price")
	assert.NoError(t, err)
	assert.Equal(t, 49.99, n)

	_, err = Float(url.Values{"price": {"abc"}}, "price", "Price")
	assert.Equal(t, &FieldError{Field: "Price", Message: "must be a number"}, err)
}

func Test_Bool(t *testing.T) {
	assert.True(t, Bool(url.Values{"is_active": {"on"}}, "is_active"))
	assert.True(t, Bool(url.Values{"is_active": {"true"}}, "is_active"))
	assert.False(t, Bool(url.Values{}, "is_active"))
}

func Test_Select__should_mark_current_value(t *testing.T) {
	field := Select("billing_cycle", "Billing cycle", "yearly", true, Options("monthly", "yearly")...)

	assert.Equal(t, SelectField, field.Type)
	assert.False(t, field.Options[0].Selected)
	assert.True(t, field.Options[1].Selected)
}

func Test_WithErrors__should_attach_error_to_field(t *testing.T) {
	f := Form{Sections: []Section{{Fields: []Field{{Name: "price", Label: "Price"}, {Name: "name", Label: "Name"}}}}}

	withErrors := f.WithErrors(&FieldError{Field: "Price", Message: "must be a number"})

	assert.Equal(t, "must be a number", withErrors.Sections[0].Fields[0].Error)
	assert.Empty(t, withErrors.Sections[0].Fields[1].Error)
	assert.Empty(t, f.Sections[0].Fields[0].Error)
}
