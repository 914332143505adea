// Package templates provides the library of ready-made payloads and colour
// presets, optionally extended from a YAML file.
package templates

import "github.com/MKhiriev/go-qr-forge/models"

// Builtin returns the templates shipped with the binary.
func Builtin() []models.Template {
	return []models.Template{
		{
			ID:          "restaurant-menu",
			Name:        "Restaurant Menu",
			Description: "Link to your digital menu",
			Type:        models.TypeURL,
			Data:        map[string]any{"value": "https://your-restaurant.com/menu"},
			Preset:      "sunset",
		},
		{
			ID:          "event-ticket",
			Name:        "Event Ticket",
			Description: "Event check-in link",
			Type:        models.TypeURL,
			Data:        map[string]any{"value": "https://your-event.com/ticket"},
			Preset:      "neon",
		},
		{
			ID:          "wifi-guest",
			Name:        "WiFi Guest Access",
			Description: "Share WiFi with guests",
			Type:        models.TypeWifi,
			Data:        map[string]any{"ssid": "GuestNetwork", "password": "welcome123", "encryption": "WPA"},
			Preset:      "ocean",
		},
		{
			ID:          "business-card",
			Name:        "Business Card",
			Description: "Your contact info",
			Type:        models.TypeVCard,
			Data: map[string]any{
				"firstName": "John",
				"lastName":  "Doe",
				"phone":     "+1234567890",
				"email":     "john@example.com",
				"company":   "Acme Inc",
				"title":     "CEO",
			},
			Preset: "midnight",
		},
		{
			ID:          "social-profile",
			Name:        "Social Profile",
			Description: "Link to your profile",
			Type:        models.TypeURL,
			Data:        map[string]any{"value": "https://instagram.com/yourprofile"},
			Preset:      "cherry",
		},
		{
			ID:          "payment-link",
			Name:        "Payment Link",
			Description: "UPI or payment URL",
			Type:        models.TypeURL,
			Data:        map[string]any{"value": "https://pay.example.com/you"},
			Preset:      "gold",
		},
		{
			ID:          "product-label",
			Name:        "Product Label",
			Description: "Product info page",
			Type:        models.TypeURL,
			Data:        map[string]any{"value": "https://your-store.com/product/123"},
			Preset:      "forest",
		},
		{
			ID:          "feedback-form",
			Name:        "Feedback Form",
			Description: "Customer feedback link",
			Type:        models.TypeURL,
			Data:        map[string]any{"value": "https://forms.google.com/your-form"},
			Preset:      "classic",
		},
	}
}

// BuiltinPresets returns the colour presets shipped with the binary.
func BuiltinPresets() []models.Preset {
	return []models.Preset{
		{Name: "classic", ColorDark: "#000000", ColorLight: "#ffffff"},
		{Name: "midnight", ColorDark: "#0a0a1a", ColorLight: "#ffffff"},
		{Name: "ocean", ColorDark: "#0c4a6e", ColorLight: "#e0f2fe"},
		{Name: "sunset", ColorDark: "#9a3412", ColorLight: "#fff7ed"},
		{Name: "forest", ColorDark: "#14532d", ColorLight: "#f0fdf4"},
		{Name: "neon", ColorDark: "#6d28d9", ColorLight: "#faf5ff"},
		{Name: "cherry", ColorDark: "#9f1239", ColorLight: "#fff1f2"},
		{Name: "gold", ColorDark: "#78350f", ColorLight: "#fffbeb"},
	}
}
