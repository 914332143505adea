// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QRDataType defines the semantic type of a QR payload.
// The value determines which record shape carries the user input
// and which micro-format the payload is encoded into.
type QRDataType string

const (
	// TypeURL is a web link, encoded verbatim (https:// is added when missing).
	TypeURL QRDataType = "url"

	// TypeText is free-form text, encoded verbatim.
	TypeText QRDataType = "text"

	// TypeWifi is a network credential in the WIFI: micro-format.
	TypeWifi QRDataType = "wifi"

	// TypeEmail is a mailto: link with optional subject and body.
	TypeEmail QRDataType = "email"

	// TypePhone is a tel: link.
	TypePhone QRDataType = "phone"

	// TypeSMS is an smsto: link with an optional message.
	TypeSMS QRDataType = "sms"

	// TypeVCard is a vCard 3.0 contact card.
	TypeVCard QRDataType = "vcard"
)

// AllTypes lists every supported QRDataType in display order.
var AllTypes = []QRDataType{TypeURL, TypeText, TypeWifi, TypeEmail, TypePhone, TypeSMS, TypeVCard}

var typeLabels = map[QRDataType]string{
	TypeURL:   "URL",
	TypeText:  "Text",
	TypeWifi:  "WiFi",
	TypeEmail: "Email",
	TypePhone: "Phone",
	TypeSMS:   "SMS",
	TypeVCard: "vCard",
}

// Label returns the human-readable name of the type.
func (t QRDataType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// IsValid reports whether t is one of AllTypes.
func (t QRDataType) IsValid() bool {
	_, ok := typeLabels[t]
	return ok
}

// WifiEncryption is the authentication scheme announced in a WIFI: payload.
type WifiEncryption string

const (
	EncryptionWPA    WifiEncryption = "WPA"
	EncryptionWEP    WifiEncryption = "WEP"
	EncryptionNoPass WifiEncryption = "nopass"
)

// WifiEncryptions lists the encryption schemes in cycling order.
var WifiEncryptions = []WifiEncryption{EncryptionWPA, EncryptionWEP, EncryptionNoPass}

// CorrectLevel is the QR error correction level.
type CorrectLevel string

const (
	CorrectLow      CorrectLevel = "L"
	CorrectMedium   CorrectLevel = "M"
	CorrectQuartile CorrectLevel = "Q"
	CorrectHigh     CorrectLevel = "H"
)

// CorrectLevels lists the levels from least to most redundant.
var CorrectLevels = []CorrectLevel{CorrectLow, CorrectMedium, CorrectQuartile, CorrectHigh}

// IsValid reports whether l is one of CorrectLevels.
func (l CorrectLevel) IsValid() bool {
	switch l {
	case CorrectLow, CorrectMedium, CorrectQuartile, CorrectHigh:
		return true
	}
	return false
}

// ExportFormat is the output format of a rendered QR code.
type ExportFormat string

const (
	FormatPNG ExportFormat = "png"
	FormatSVG ExportFormat = "svg"
	FormatTXT ExportFormat = "txt"
	FormatZIP ExportFormat = "zip"

	// FormatFramed is a print-ready SVG poster: the symbol under an accent
	// bar with a caption below it.
	FormatFramed ExportFormat = "framed"
)

// ExportFormats lists every export format.
var ExportFormats = []ExportFormat{FormatPNG, FormatSVG, FormatTXT, FormatZIP, FormatFramed}

// IsValid reports whether f is a supported export format.
func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatPNG, FormatSVG, FormatTXT, FormatZIP, FormatFramed:
		return true
	}
	return false
}

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatSVG, FormatFramed:
		return "image/svg+xml"
	case FormatTXT:
		return "text/plain; charset=utf-8"
	case FormatZIP:
		return "application/zip"
	default:
		return "image/png"
	}
}

// FileName is the download name of a rendered artefact.
func (f ExportFormat) FileName() string {
	if f == FormatFramed {
		return "qr-code-framed.svg"
	}
	return "qr-code." + string(f)
}
