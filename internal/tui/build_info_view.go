// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-qr-forge/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverStatus string) string {
	var b strings.Builder

	b.WriteString("QR Forge: generate QR codes for links, WiFi, contacts and more\n\n")
	b.WriteString(strings.Join(info.Lines(), "\n"))
	if serverStatus != "" {
		b.WriteString("\nServer: " + serverStatus)
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}
