package payload

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-qr-forge/models"
)

var (
	wifiPrefix   = regexp.MustCompile(`(?i)^WIFI:`)
	wifiSSID     = regexp.MustCompile(`S:([^;]*)`)
	wifiPassword = regexp.MustCompile(`P:([^;]*)`)
	wifiType     = regexp.MustCompile(`T:([^;]*)`)
	wifiHidden   = regexp.MustCompile(`H:([^;]*)`)

	mailtoPrefix = regexp.MustCompile(`(?i)^mailto:`)
	telPrefix    = regexp.MustCompile(`(?i)^tel:`)
	phoneShape   = regexp.MustCompile(`^\+?\d[\d\s\-().]{6,15}$`)
	domainShape  = regexp.MustCompile(`^[\w-]+(\.[\w-]+)+`)
)

// Detect classifies text by the first matching rule:
//
//  1. WIFI: prefix (case-insensitive)
//  2. bare e-mail address
//  3. mailto: prefix
//  4. phone number shape
//  5. tel: prefix
//  6. http(s):// prefix or a dotted domain at the start
//  7. anything else is text
//
// Surrounding whitespace is ignored. Detect is lossy: WiFi fields are not
// unescaped and mailto: subject or body are dropped.
func Detect(text string) models.DetectionResult {
	t := trim(text)

	switch {
	case wifiPrefix.MatchString(t):
		return detected(detectWifi(t))

	case emailShape.MatchString(t):
		return detected(models.EmailData{Address: t})

	case mailtoPrefix.MatchString(t):
		addr, _, _ := strings.Cut(mailtoPrefix.ReplaceAllString(t, ""), "?")
		return detected(models.EmailData{Address: addr})

	case phoneShape.MatchString(t):
		return detected(models.PhoneData{Value: t})

	case telPrefix.MatchString(t):
		return detected(models.PhoneData{Value: telPrefix.ReplaceAllString(t, "")})

	case httpScheme.MatchString(t), domainShape.MatchString(t):
		return detected(models.URLData{Value: t})
	}

	return detected(models.TextData{Value: t})
}

func detectWifi(t string) models.WifiData {
	d := models.WifiData{
		SSID:       firstGroup(wifiSSID, t),
		Password:   firstGroup(wifiPassword, t),
		Encryption: models.EncryptionWPA,
		Hidden:     strings.EqualFold(firstGroup(wifiHidden, t), "true"),
	}
	// WPA only when T: is absent; an empty T: stays empty
	if m := wifiType.FindStringSubmatch(t); m != nil {
		d.Encryption = models.WifiEncryption(m[1])
	}
	return d
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func detected(p models.Payload) models.DetectionResult {
	return models.DetectionResult{Type: p.Type(), Data: p}
}
