package payload

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────
// EncodeWifi
// ─────────────────────────────────────────────

func TestEncodeWifi(t *testing.T) {
	tests := []struct {
		name string
		in   models.WifiData
		want string
	}{
		{
			name: "default encryption is WPA",
			in:   models.WifiData{SSID: "MyNet", Password: "secret123"},
			want: "WIFI:T:WPA;S:MyNet;P:secret123;H:false;;",
		},
		{
			name: "open hidden network",
			in:   models.WifiData{SSID: "Cafe", Encryption: models.EncryptionNoPass, Hidden: true},
			want: "WIFI:T:nopass;S:Cafe;P:;H:true;;",
		},
		{
			name: "reserved characters are escaped",
			in:   models.WifiData{SSID: `a;b,c:d"e\f`, Password: `p;w`, Encryption: models.EncryptionWEP},
			want: `WIFI:T:WEP;S:a\;b\,c\:d\"e\\f;P:p\;w;H:false;;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeWifi(tt.in))
		})
	}
}

// ─────────────────────────────────────────────
// EncodeEmail
// ─────────────────────────────────────────────

func TestEncodeEmail(t *testing.T) {
	tests := []struct {
		name string
		in   models.EmailData
		want string
	}{
		{"address only", models.EmailData{Address: "a@b.co"}, "mailto:a@b.co"},
		{"subject only", models.EmailData{Address: "a@b.co", Subject: "Hi there"}, "mailto:a@b.co?subject=Hi%20there"},
		{"body only", models.EmailData{Address: "a@b.co", Body: "x&y=z"}, "mailto:a@b.co?body=x%26y%3Dz"},
		{
			"subject and body",
			models.EmailData{Address: "a@b.co", Subject: "Q&A", Body: "line1\nline2"},
			"mailto:a@b.co?subject=Q%26A&body=line1%0Aline2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeEmail(tt.in))
		})
	}
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "AZaz09-_.!~*'()", encodeURIComponent("AZaz09-_.!~*'()"))
	assert.Equal(t, "%20%2B%2F%3F%23", encodeURIComponent(" +/?#"))
	assert.Equal(t, "%C3%A9", encodeURIComponent("é"))
}

// ─────────────────────────────────────────────
// EncodePhone / EncodeSMS
// ─────────────────────────────────────────────

func TestEncodePhone_StripsWhitespace(t *testing.T) {
	assert.Equal(t, "tel:+12345678900", EncodePhone("+1 234\t567 8900"))
}

func TestTrim_MatchesBrowserWhitespace(t *testing.T) {
	assert.Equal(t, "x", trim("\uFEFF\u00A0\u3000x\u2028\r\n"))
	assert.Equal(t, "\u0085x", trim(" \u0085x"))
	assert.Equal(t, "tel:\u0085+1", EncodePhone("\u0085 +\uFEFF1"))
}

func TestEncodeSMS(t *testing.T) {
	assert.Equal(t, "smsto:+15551234", EncodeSMS(models.SMSData{Phone: "+1 555 1234"}))
	assert.Equal(t, "smsto:+15551234:hello there", EncodeSMS(models.SMSData{Phone: "+1 555 1234", Message: "hello there"}))
}

// ─────────────────────────────────────────────
// EncodeVCard
// ─────────────────────────────────────────────

func TestEncodeVCard_Full(t *testing.T) {
	got := EncodeVCard(models.VCardData{
		FirstName: "John",
		LastName:  "Doe",
		Phone:     "+1 234 567 890",
		Email:     "john@example.com",
		Company:   "Acme Inc",
		Title:     "CEO",
		Website:   "acme.example",
	})

	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:John Doe",
		"N:Doe;John;;;",
		"ORG:Acme Inc",
		"TITLE:CEO",
		"TEL;TYPE=CELL:+1234567890",
		"EMAIL:john@example.com",
		"URL:https://acme.example",
		"END:VCARD",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestEncodeVCard_LastNameOnly(t *testing.T) {
	got := EncodeVCard(models.VCardData{LastName: "Doe"})

	assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Doe\nN:Doe;;;;\nEND:VCARD", got)
}

func TestEncodeVCard_WebsiteWithScheme_Kept(t *testing.T) {
	got := EncodeVCard(models.VCardData{FirstName: "A", Website: "HTTP://x.org"})

	assert.Contains(t, got, "\nURL:HTTP://x.org\n")
}
