package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Identity
	}{
		{name: "dashed phone", raw: "555-1234", want: Identity{Kind: KindPhone, Value: "5551234"}},
		{name: "formatted phone", raw: " (02) 2345-6789 ", want: Identity{Kind: KindPhone, Value: "0223456789"}},
		{name: "international phone", raw: "+1 555 1234", want: Identity{Kind: KindPhone, Value: "15551234"}},
		{name: "email", raw: "A@B.com", want: Identity{Kind: KindEmail, Value: "a@b.com"}},
		{name: "email with spaces", raw: "  Guest.Name@Example.ORG\t", want: Identity{Kind: KindEmail, Value: "guest.name@example.org"}},
		{name: "no tld is phone", raw: "a@b", want: Identity{Kind: KindPhone, Value: ""}},
		{name: "empty", raw: "", want: Identity{Kind: KindPhone, Value: ""}},
		{name: "fullwidth digits dropped", raw: "５５５", want: Identity{Kind: KindPhone, Value: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		phone     string
		email     string
		want      bool
	}{
		{name: "phone matches stored formatting", submitted: "5551234", phone: "555-1234", want: true},
		{name: "email case insensitive", submitted: "A@B.COM", email: "a@b.com", want: true},
		{name: "email against phone only guest", submitted: "a@b.com", phone: "555-1234", want: false},
		{name: "phone against email only guest", submitted: "555-1234", email: "a@b.com", want: false},
		{name: "either field works", submitted: "555-1234", phone: "555 1234", email: "a@b.com", want: true},
		{name: "wrong phone", submitted: "555-9999", phone: "555-1234", want: false},
		{name: "empty submission never matches", submitted: "---", phone: "", want: false},
		{name: "country code not reconciled", submitted: "+1 555-1234", phone: "555-1234", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(Parse(tt.submitted), tt.phone, tt.email))
		})
	}
}

func TestRecord(t *testing.T) {
	phone, email := Record(Parse("555-1234"))
	assert.Equal(t, "5551234", phone)
	assert.Empty(t, email)

	phone, email = Record(Parse("Wrong@X.com"))
	assert.Empty(t, phone)
	assert.Equal(t, "wrong@x.com", email)
}
