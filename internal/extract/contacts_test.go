package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContacts_MailtoAnchor(t *testing.T) {
	html := `<html><body><a href="mailto:info@acme.com?subject=Hi">Email us</a></body></html>`

	emails, phones := Contacts(html)

	assert.Contains(t, emails.Values(), "info@acme.com")
	assert.Zero(t, phones.Len())
}

func TestContacts_StructuralBeforeRegex(t *testing.T) {
	// The mailto target must claim the primary slot even though the regex
	// hit appears earlier in the markup.
	html := `<html><body>
		<p>support@acme.com</p>
		<a href="mailto:info@acme.com">contact</a>
	</body></html>`

	emails, _ := Contacts(html)

	assert.Equal(t, "info@acme.com", emails.First())
	assert.ElementsMatch(t, []string{"info@acme.com", "support@acme.com"}, emails.Values())
}

func TestContacts_RegexEmailFallback(t *testing.T) {
	html := `<html><body><p>Reach sales at sales@acme.co.uk today.</p></body></html>`

	emails, _ := Contacts(html)

	assert.Equal(t, []string{"sales@acme.co.uk"}, emails.Values())
}

func TestContacts_TelAnchorAndRegexPhones(t *testing.T) {
	html := `<html><body>
		<a href="tel:+39 055 123 4567">Call</a>
		<p>Fax: 055-765-4321</p>
	</body></html>`

	_, phones := Contacts(html)

	assert.Equal(t, "+39 055 123 4567", phones.First())
	assert.Contains(t, phones.Values(), "055-765-4321")
}

func TestContacts_RejectsShortDigitRuns(t *testing.T) {
	// 6 significant digits is below the phone threshold.
	html := `<html><body><p>Room 12 34 56, est. 1985</p></body></html>`

	_, phones := Contacts(html)

	assert.Zero(t, phones.Len())
}

func TestContacts_NoContactMarkup(t *testing.T) {
	html := `<html><body><h1>Welcome</h1><p>We build fine furniture.</p></body></html>`

	emails, phones := Contacts(html)

	assert.NotNil(t, emails)
	assert.NotNil(t, phones)
	assert.Zero(t, emails.Len())
	assert.Zero(t, phones.Len())
}

func TestContacts_EmptyInput(t *testing.T) {
	emails, phones := Contacts("")
	assert.Zero(t, emails.Len())
	assert.Zero(t, phones.Len())
}

func TestPlausiblePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"+39 055 123 4567", true},
		{"(212) 555-0187", true},
		{"12.34.56.78", true},
		{"123456", false},
		{"12 34 56", false},
		{"+39 055 abc 4567", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, plausiblePhone(tt.raw), "raw %q", tt.raw)
	}
}

func TestAddress(t *testing.T) {
	html := `<html><body><address>Via Roma 1,
		50100 Firenze</address></body></html>`

	assert.Equal(t, "Via Roma 1, 50100 Firenze", Address(html))
	assert.Equal(t, "", Address("<html><body>no address here</body></html>"))
}
