package tui

import (
	"github.com/MKhiriev/go-qr-forge/models"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSecret
	fieldChoice
	fieldBool
)

// fieldSpec describes one form input. key is the JSON name of the record
// field it fills.
type fieldSpec struct {
	key         string
	label       string
	kind        fieldKind
	placeholder string
	choices     []string
	charLimit   int
}

var wifiEncryptionChoices = func() []string {
	out := make([]string, len(models.WifiEncryptions))
	for i, e := range models.WifiEncryptions {
		out[i] = string(e)
	}
	return out
}()

var formFields = map[models.QRDataType][]fieldSpec{
	models.TypeURL: {
		{key: "value", label: "URL", placeholder: "https://example.com"},
	},
	models.TypeText: {
		{key: "value", label: "Text", placeholder: "Any text", charLimit: 4296},
	},
	models.TypeWifi: {
		{key: "ssid", label: "Network name", placeholder: "MyNetwork"},
		{key: "password", label: "Password", kind: fieldSecret},
		{key: "encryption", label: "Encryption", kind: fieldChoice, choices: wifiEncryptionChoices},
		{key: "hidden", label: "Hidden network", kind: fieldBool},
	},
	models.TypeEmail: {
		{key: "address", label: "Email", placeholder: "name@example.com"},
		{key: "subject", label: "Subject"},
		{key: "body", label: "Body"},
	},
	models.TypePhone: {
		{key: "value", label: "Phone", placeholder: "+1 555 123 4567"},
	},
	models.TypeSMS: {
		{key: "phone", label: "Phone", placeholder: "+1 555 123 4567"},
		{key: "message", label: "Message"},
	},
	models.TypeVCard: {
		{key: "firstName", label: "First name"},
		{key: "lastName", label: "Last name"},
		{key: "phone", label: "Phone"},
		{key: "email", label: "Email"},
		{key: "company", label: "Company"},
		{key: "title", label: "Job title"},
		{key: "website", label: "Website"},
	},
}
