// Package rm690b0 controls a RM690B0 AMOLED display via QSPI.
//
// The RM690B0 is a 16-bit color AMOLED controller. This driver targets the
// 600×450 panel and implements the display.Drawer interface from periph.io
// as well as the Displayer interface used by TinyGo drivers.
//
// # Display Characteristics
//
// - RGB565 color (16 bits per pixel, big-endian on the wire)
// - 600×450 pixels in the default landscape orientation
// - Adjustable brightness (0-255)
// - Display inversion
// - Tearing effect output enabled during initialization
//
// # Hardware Connection
//
// Connect the panel to a QSPI capable controller:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCI         → 3.3V
//	CLK         → QSPI Clock
//	D0-D3       → QSPI Data 0-3
//	CS          → QSPI Chip Select
//	RST         → Optional: GPIO for hardware reset
//	TE          → Optional: tearing effect input
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/rm690b0"
//		"periph.io/x/devices/v3/rm690b0/image565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		port, _ := spireg.Open("")
//		defer port.Close()
//
//		dev, _ := rm690b0.NewSPI(port, nil)
//		defer dev.Halt()
//
//		dev.Fill(image565.Black)
//		dev.FillCircle(300, 225, 100, image565.Red)
//		dev.Swap(true)
//	}
//
// # Double Buffering
//
// The driver owns two full framebuffers. Drawing methods (WritePixel,
// FillRect, Line, Circle, Text, DrawBMP, ...) only write into the back
// buffer and never fail; coordinates outside the display are clipped.
//
// Swap exchanges the buffers and sends the new front buffer to the panel.
// With copyForward the new front is copied into the back buffer afterwards
// so incremental drawing can continue:
//
//	dev.FillRect(10, 10, 100, 50, image565.Blue)
//	dev.Swap(true)
//
// SwapLines sends only a band of lines when the rest of the frame is known
// to be unchanged.
//
// # Transfers
//
// The panel is written in chunks of at most Opts.MaxLines scanlines (30 by
// default). Each chunk is copied into a DMA-capable staging buffer, sent as
// one pixel write, and followed by a settle delay proportional to its size,
// between 50µs and 500µs. A chunk that fails is retried once; if the retry
// fails too, the pass stops and a *TransferError is returned. It matches
// ErrTransferFault:
//
//	if err := dev.Swap(true); errors.Is(err, rm690b0.ErrTransferFault) {
//		dev.Present(0, 450) // resend the visible frame
//	}
//
// The driver is not safe for concurrent use. A transfer started while
// another one holds the staging buffers returns ErrBusy.
//
// # Memory
//
// Both framebuffers (1,080,000 bytes for 600×450) must fit Opts.BulkMemory
// and the staging buffers must fit Opts.StagingMemory. Otherwise New
// returns an error wrapping ErrNoMemory.
//
// # Text and Images
//
// Text is rendered from fixed-size glyph tables (see package glyph). Fonts
// are selected with SetFont or passed explicitly to DrawText, and every
// call takes its own glyph.Style:
//
//	dev.SetFont(glyph.Font16x24)
//	dev.Text(8, 8, "Hello", glyph.Style{FG: image565.White, Transparent: true})
//
// DrawBMP accepts uncompressed 24-bit BMP files and DrawJPEG baseline JPEG
// files (see package codec). Both validate or decode the whole file before
// drawing, so on error the back buffer is unchanged.
//
// # Touch Input
//
// Package touch maps samples from the panel's touch controller to pixel
// coordinates for each display rotation.
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// Draw composes the source image into the back buffer and calls Swap(true).
package rm690b0
