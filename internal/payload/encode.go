package payload

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/MKhiriev/go-qr-forge/models"
)

var (
	// wifiEscaper backslash-escapes the characters reserved by the WIFI: format.
	wifiEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)

	httpScheme = regexp.MustCompile(`(?i)^https?://`)
)

// EncodeWifi encodes a network credential as
// WIFI:T:<enc>;S:<ssid>;P:<password>;H:<hidden>;;
func EncodeWifi(d models.WifiData) string {
	enc := d.Encryption
	if enc == "" {
		enc = models.EncryptionWPA
	}

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(string(enc))
	b.WriteString(";S:")
	b.WriteString(wifiEscaper.Replace(d.SSID))
	b.WriteString(";P:")
	b.WriteString(wifiEscaper.Replace(d.Password))
	b.WriteString(";H:")
	b.WriteString(strconv.FormatBool(d.Hidden))
	b.WriteString(";;")
	return b.String()
}

// EncodeEmail encodes a mailto: link. Subject and body are added as
// percent-encoded query parameters only when non-empty.
func EncodeEmail(d models.EmailData) string {
	params := make([]string, 0, 2)
	if d.Subject != "" {
		params = append(params, "subject="+encodeURIComponent(d.Subject))
	}
	if d.Body != "" {
		params = append(params, "body="+encodeURIComponent(d.Body))
	}

	out := "mailto:" + d.Address
	if len(params) > 0 {
		out += "?" + strings.Join(params, "&")
	}
	return out
}

// EncodePhone encodes a tel: link with all whitespace removed.
func EncodePhone(phone string) string {
	return "tel:" + stripSpace(phone)
}

// EncodeSMS encodes an smsto: link; the message is appended after a colon
// only when present.
func EncodeSMS(d models.SMSData) string {
	out := "smsto:" + stripSpace(d.Phone)
	if d.Message != "" {
		out += ":" + d.Message
	}
	return out
}

// EncodeVCard encodes a vCard 3.0 record. Optional lines are omitted rather
// than emitted empty.
func EncodeVCard(d models.VCardData) string {
	lines := []string{"BEGIN:VCARD", "VERSION:3.0"}

	names := make([]string, 0, 2)
	for _, n := range []string{d.FirstName, d.LastName} {
		if n != "" {
			names = append(names, n)
		}
	}
	if fn := trim(strings.Join(names, " ")); fn != "" {
		lines = append(lines, "FN:"+fn)
	}
	if d.FirstName != "" || d.LastName != "" {
		lines = append(lines, "N:"+d.LastName+";"+d.FirstName+";;;")
	}
	if d.Company != "" {
		lines = append(lines, "ORG:"+d.Company)
	}
	if d.Title != "" {
		lines = append(lines, "TITLE:"+d.Title)
	}
	if d.Phone != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+stripSpace(d.Phone))
	}
	if d.Email != "" {
		lines = append(lines, "EMAIL:"+d.Email)
	}
	if d.Website != "" {
		lines = append(lines, "URL:"+withHTTPS(d.Website))
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}

func withHTTPS(s string) string {
	if httpScheme.MatchString(s) {
		return s
	}
	return "https://" + s
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, s)
}

// isSpace matches the ECMAScript white space and line terminator set that
// scanner apps and browsers trim. It differs from unicode.IsSpace by
// including U+FEFF and excluding U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// textLength counts UTF-16 code units, the unit QR capacity limits are
// quoted in by the web generators this payload format comes from.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

const upperhex = "0123456789ABCDEF"

// encodeURIComponent percent-encodes every UTF-8 byte except the URI
// component unreserved set A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
