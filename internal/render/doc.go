// Package render turns an encoded payload into a QR symbol image.
//
// It is the only place go-qrcode is used. PNG output is padded on a white
// canvas the way downloads are; SVG output carries a four-module quiet zone
// in the option colours; terminal output uses half-block characters; a ZIP
// bundle packs all of them together with the raw payload.
package render
