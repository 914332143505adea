package models

// Payload is the structured user input for one QRDataType.
// It is a closed sum type: only the record types declared in this file
// implement it, so a type switch over Payload can be exhaustive.
type Payload interface {
	// Type returns the QRDataType the record belongs to.
	Type() QRDataType

	isPayload()
}

// URLData is the record of a TypeURL payload.
type URLData struct {
	Value string `json:"value"`
}

// TextData is the record of a TypeText payload.
type TextData struct {
	Value string `json:"value"`
}

// PhoneData is the record of a TypePhone payload.
type PhoneData struct {
	Value string `json:"value"`
}

// WifiData is the record of a TypeWifi payload.
type WifiData struct {
	// SSID is the network name. Required.
	SSID string `json:"ssid"`

	// Password is the network key. Empty for open networks.
	Password string `json:"password"`

	// Encryption is the authentication scheme; empty means WPA.
	Encryption WifiEncryption `json:"encryption,omitempty"`

	// Hidden marks a network that does not broadcast its SSID.
	Hidden bool `json:"hidden"`
}

// EmailData is the record of a TypeEmail payload.
type EmailData struct {
	Address string `json:"address"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

// SMSData is the record of a TypeSMS payload.
type SMSData struct {
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

// VCardData is the record of a TypeVCard payload.
// All fields are optional but at least one name part is required to encode.
type VCardData struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Company   string `json:"company,omitempty"`
	Title     string `json:"title,omitempty"`
	Website   string `json:"website,omitempty"`
}

func (URLData) Type() QRDataType   { return TypeURL }
func (TextData) Type() QRDataType  { return TypeText }
func (PhoneData) Type() QRDataType { return TypePhone }
func (WifiData) Type() QRDataType  { return TypeWifi }
func (EmailData) Type() QRDataType { return TypeEmail }
func (SMSData) Type() QRDataType   { return TypeSMS }
func (VCardData) Type() QRDataType { return TypeVCard }

func (URLData) isPayload()   {}
func (TextData) isPayload()  {}
func (PhoneData) isPayload() {}
func (WifiData) isPayload()  {}
func (EmailData) isPayload() {}
func (SMSData) isPayload()   {}
func (VCardData) isPayload() {}
