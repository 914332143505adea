// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qr-forge/models"
	"github.com/klauspost/compress/zip"
	qrcode "github.com/skip2/go-qrcode"
)

// QuietZone is the number of blank modules around an SVG symbol.
const QuietZone = 4

// Bundle entry names.
const (
	BundlePNG     = "qr-code.png"
	BundleSVG     = "qr-code.svg"
	BundlePayload = "payload.txt"
)

// Renderer renders encoded payloads. It is stateless and safe for
// concurrent use.
type Renderer struct {
	padding int
}

// NewRenderer returns a Renderer that pads PNG output by padding pixels.
func NewRenderer(padding int) *Renderer {
	if padding < 0 {
		padding = 0
	}
	return &Renderer{padding: padding}
}

// Render produces the artefact for format. An empty format means PNG.
func (r *Renderer) Render(encoded string, opts models.RenderOptions, format models.ExportFormat) (models.Rendered, error) {
	var (
		content []byte
		err     error
	)

	switch format {
	case models.FormatPNG, "":
		format = models.FormatPNG
		content, err = r.PNG(encoded, opts)
	case models.FormatSVG:
		var svg string
		svg, err = r.SVG(encoded, opts)
		content = []byte(svg)
	case models.FormatTXT:
		var txt string
		txt, err = r.Terminal(encoded, opts.CorrectLevel)
		content = []byte(txt)
	case models.FormatZIP:
		content, err = r.Bundle(encoded, opts)
	case models.FormatFramed:
		var poster string
		poster, err = r.Framed(encoded, opts)
		content = []byte(poster)
	default:
		return models.Rendered{}, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	if err != nil {
		return models.Rendered{}, err
	}

	return models.Rendered{Encoded: encoded, Format: format, Content: content}, nil
}

// PNG renders the symbol at opts.Size in the option colours and centres it
// on a white canvas with the configured padding.
func (r *Renderer) PNG(encoded string, opts models.RenderOptions) ([]byte, error) {
	q, err := newSymbol(encoded, opts)
	if err != nil {
		return nil, err
	}

	symbol := q.Image(opts.Size)
	b := symbol.Bounds()

	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*r.padding, b.Dy()+2*r.padding))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(canvas, b.Add(image.Pt(r.padding, r.padding)), symbol, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SVG renders the symbol as a scalable vector image. Each run of dark
// modules in a row becomes one rect.
func (r *Renderer) SVG(encoded string, opts models.RenderOptions) (string, error) {
	q, err := newSymbol(encoded, opts)
	if err != nil {
		return "", err
	}
	q.DisableBorder = true
	modules := q.Bitmap()

	total := strconv.Itoa(len(modules) + 2*QuietZone)
	size := strconv.Itoa(opts.Size)

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 ` + total + ` ` + total +
		`" width="` + size + `" height="` + size + `" shape-rendering="crispEdges">`)
	sb.WriteString(`<rect width="100%" height="100%" fill="` + opts.ColorLight + `"/>`)
	sb.WriteString(`<g fill="` + opts.ColorDark + `">`)

	for y, row := range modules {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="1"/>`, start+QuietZone, y+QuietZone, x-start)
		}
	}

	sb.WriteString(`</g></svg>`)
	return sb.String(), nil
}

// DefaultFrameLabel captions a framed poster without a label.
const DefaultFrameLabel = "Scan Me!"

// Framed poster geometry in pixels and colours.
const (
	framePadding      = 60
	frameHeader       = 50
	frameAccentHeight = 4
	frameFooter       = 60
	frameFooterSub    = 80

	frameAccent   = "#6d28d9"
	frameText     = "#1a1a2e"
	frameSubtext  = "#888888"
	frameBorder   = "#e0e0e0"
	frameBranding = "Generated with go-qr-forge"
)

// Framed renders a print-ready poster: an accent bar, the SVG symbol inside
// a thin border, the label (DefaultFrameLabel when empty), the optional
// sublabel and a small branding line. The poster background is
// opts.ColorLight.
func (r *Renderer) Framed(encoded string, opts models.RenderOptions) (string, error) {
	symbol, err := r.SVG(encoded, opts)
	if err != nil {
		return "", err
	}

	label := opts.Label
	if label == "" {
		label = DefaultFrameLabel
	}
	footer := frameFooter
	if opts.Sublabel != "" {
		footer = frameFooterSub
	}

	width := opts.Size + 2*framePadding
	height := opts.Size + 2*framePadding + frameHeader + footer + frameAccentHeight
	qrX, qrY := framePadding, frameAccentHeight+frameHeader
	centre := width / 2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>`, opts.ColorLight)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"/>`, width, frameAccentHeight, frameAccent)
	fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="1"/>`,
		qrX-1, qrY-1, opts.Size+2, opts.Size+2, frameBorder)
	sb.WriteString(strings.Replace(symbol, "<svg ", fmt.Sprintf(`<svg x="%d" y="%d" `, qrX, qrY), 1))

	caption := func(text string, y, size int, weight, fill string) {
		fmt.Fprintf(&sb, `<text x="%d" y="%d" text-anchor="middle" font-family="Inter, system-ui, sans-serif" font-size="%d" font-weight="%s" fill="%s">`,
			centre, y, size, weight, fill)
		_ = xml.EscapeText(&sb, []byte(text))
		sb.WriteString(`</text>`)
	}
	caption(label, qrY+opts.Size+36, 24, "bold", frameText)
	if opts.Sublabel != "" {
		caption(opts.Sublabel, qrY+opts.Size+58, 14, "normal", frameSubtext)
	}
	caption(frameBranding, height-8, 10, "normal", "#cccccc")

	sb.WriteString(`</svg>`)
	return sb.String(), nil
}

// Terminal renders the symbol with half-block characters, two module rows
// per text line.
func (r *Renderer) Terminal(encoded string, level models.CorrectLevel) (string, error) {
	if encoded == "" {
		return "", ErrEmptyPayload
	}
	q, err := qrcode.New(encoded, recoveryLevel(level))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrContentTooLong, err)
	}
	return q.ToSmallString(false), nil
}

// Bundle zips the PNG, the SVG and the raw payload.
func (r *Renderer) Bundle(encoded string, opts models.RenderOptions) ([]byte, error) {
	pngBytes, err := r.PNG(encoded, opts)
	if err != nil {
		return nil, err
	}
	svg, err := r.SVG(encoded, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range []struct {
		name string
		data []byte
	}{
		{BundlePNG, pngBytes},
		{BundleSVG, []byte(svg)},
		{BundlePayload, []byte(encoded)},
	} {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", f.name, err)
		}
		if _, err := w.Write(f.data); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close bundle: %w", err)
	}

	return buf.Bytes(), nil
}

func newSymbol(encoded string, opts models.RenderOptions) (*qrcode.QRCode, error) {
	if encoded == "" {
		return nil, ErrEmptyPayload
	}

	dark, err := parseHexColor(opts.ColorDark)
	if err != nil {
		return nil, err
	}
	light, err := parseHexColor(opts.ColorLight)
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(encoded, recoveryLevel(opts.CorrectLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentTooLong, err)
	}
	q.ForegroundColor = dark
	q.BackgroundColor = light

	return q, nil
}

// recoveryLevel maps L/M/Q/H onto go-qrcode's levels. go-qrcode names the
// 25% level High and the 30% level Highest.
func recoveryLevel(l models.CorrectLevel) qrcode.RecoveryLevel {
	switch l {
	case models.CorrectLow:
		return qrcode.Low
	case models.CorrectMedium:
		return qrcode.Medium
	case models.CorrectQuartile:
		return qrcode.High
	default:
		return qrcode.Highest
	}
}
