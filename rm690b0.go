// Package rm690b0 controls a RM690B0 AMOLED display via QSPI.
//
// The RM690B0 drives 600x450 RGB565 AMOLED panels through two framebuffers.
//
// See the examples for how to use this package.
package rm690b0

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/rm690b0/codec"
	"periph.io/x/devices/v3/rm690b0/glyph"
	"periph.io/x/devices/v3/rm690b0/image565"
	"periph.io/x/devices/v3/rm690b0/staging"
	"tinygo.org/x/drivers"
)

var (
	// ErrHalted is returned by panel operations after Halt.
	ErrHalted = errors.New("rm690b0: halted")
	// ErrNoMemory is returned by New when the framebuffers or the staging
	// pool do not fit the configured memory.
	ErrNoMemory = errors.New("rm690b0: insufficient memory")
	// ErrTransferFault matches every *TransferError.
	ErrTransferFault = errors.New("rm690b0: frame not fully presented")
	// ErrBusy is returned when a transfer pass is already using the staging
	// buffers.
	ErrBusy = errors.New("rm690b0: transfer in progress")
)

// Opts is the configuration for the RM690B0 display.
//
// Zero fields take the defaults of the 600x450 panel. The transfer limits
// are properties of the panel and controller pairing, not tuning knobs.
type Opts struct {
	// Display geometry in pixels
	W int // Width (default: 600)
	H int // Height (default: 450)

	// Controller RAM offsets of the visible area
	ColumnOffset int
	RowOffset    int

	// Transfer limits
	MaxLines      int           // Scanlines per transfer (default: 30)
	SettleMin     time.Duration // Settle delay floor (default: 50µs)
	SettleMax     time.Duration // Settle delay ceiling (default: 500µs)
	SettleDivisor int           // Pixels per microsecond of settle delay (default: 36)
	RetryBackoff  time.Duration // Pause before retrying a failed chunk (default: 1ms)

	// Memory available to the driver, in bytes
	BulkMemory     int // For both framebuffers (default: 8 MiB)
	StagingMemory  int // DMA-capable (default: 64 KiB)
	StagingBuffers int // Number of staging buffers (default: 1)

	// JPEG decoder, normally the platform's hardware engine
	// (default: codec.SoftwareJPEG)
	JPEG codec.JPEGDecoder

	// Optional hardware reset pin
	RST gpio.PinIO
}

// DefaultOpts is the configuration of the 600x450 panel.
var DefaultOpts = Opts{
	W:              600,
	H:              450,
	MaxLines:       30,
	SettleMin:      50 * time.Microsecond,
	SettleMax:      500 * time.Microsecond,
	SettleDivisor:  36,
	RetryBackoff:   time.Millisecond,
	BulkMemory:     8 << 20,
	StagingMemory:  64 << 10,
	StagingBuffers: 1,
}

// withDefaults returns a copy of o with zero fields filled from DefaultOpts.
func (o *Opts) withDefaults() Opts {
	r := DefaultOpts
	if o == nil {
		r.JPEG = codec.SoftwareJPEG{}
		return r
	}
	r.ColumnOffset, r.RowOffset, r.RST, r.JPEG = o.ColumnOffset, o.RowOffset, o.RST, o.JPEG
	if o.W != 0 {
		r.W = o.W
	}
	if o.H != 0 {
		r.H = o.H
	}
	if o.MaxLines != 0 {
		r.MaxLines = o.MaxLines
	}
	if o.SettleMin != 0 {
		r.SettleMin = o.SettleMin
	}
	if o.SettleMax != 0 {
		r.SettleMax = o.SettleMax
	}
	if o.SettleDivisor != 0 {
		r.SettleDivisor = o.SettleDivisor
	}
	if o.RetryBackoff != 0 {
		r.RetryBackoff = o.RetryBackoff
	}
	if o.BulkMemory != 0 {
		r.BulkMemory = o.BulkMemory
	}
	if o.StagingMemory != 0 {
		r.StagingMemory = o.StagingMemory
	}
	if o.StagingBuffers != 0 {
		r.StagingBuffers = o.StagingBuffers
	}
	if r.JPEG == nil {
		r.JPEG = codec.SoftwareJPEG{}
	}
	return r
}

func (o *Opts) validate() error {
	if o.W <= 0 || o.H <= 0 || o.W+o.ColumnOffset > 0xFFFF || o.H+o.RowOffset > 0xFFFF {
		return fmt.Errorf("rm690b0: invalid size %dx%d", o.W, o.H)
	}
	if o.ColumnOffset < 0 || o.RowOffset < 0 {
		return errors.New("rm690b0: offsets must not be negative")
	}
	if o.MaxLines <= 0 {
		return errors.New("rm690b0: max lines must be positive")
	}
	if o.SettleDivisor <= 0 {
		return errors.New("rm690b0: settle divisor must be positive")
	}
	if o.SettleMin < 0 || o.SettleMin > o.SettleMax {
		return errors.New("rm690b0: settle floor must be between 0 and the ceiling")
	}
	if o.StagingBuffers < 0 || o.RetryBackoff < 0 {
		return errors.New("rm690b0: negative option")
	}
	return nil
}

// Dev is the device handle for the RM690B0 display.
type Dev struct {
	// Communication
	c   conn.Conn  // QSPI connection
	rst gpio.PinIO // Reset pin (optional)

	opts Opts
	rect image.Rectangle

	// Framebuffers; frames[front] is visible, the other one is drawn into
	frames [2]*image565.Image
	front  int

	pool *staging.Pool
	font *glyph.Font

	sleep  func(time.Duration)
	halted bool
}

var (
	_ display.Drawer    = (*Dev)(nil)
	_ drivers.Displayer = (*Dev)(nil)
)

// NewSPI creates a new RM690B0 device connected via SPI.
//
// The port is configured for 40MHz, Mode0, 8-bit words. On the target the
// port runs in quad mode; the framing produced by the driver is the same.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("rm690b0: %w", err)
	}
	return New(c, opts)
}

// New creates a new RM690B0 device on an established connection.
//
// Both framebuffers and the staging pool are allocated once here. When they
// do not fit opts.BulkMemory or opts.StagingMemory the error wraps
// ErrNoMemory and no device is returned.
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	d, err := newDev(c, opts)
	if err != nil {
		return nil, err
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// newDev allocates the device without talking to the panel.
func newDev(c conn.Conn, opts *Opts) (*Dev, error) {
	o := opts.withDefaults()
	if err := o.validate(); err != nil {
		return nil, err
	}

	frameBytes := o.W * o.H * 2
	if need := 2 * frameBytes; need > o.BulkMemory {
		return nil, fmt.Errorf("%w: framebuffers need %d bytes, have %d", ErrNoMemory, need, o.BulkMemory)
	}
	pool, err := staging.New(o.StagingBuffers, stagingSize(&o), o.StagingMemory)
	if err != nil {
		if errors.Is(err, staging.ErrNoMemory) {
			return nil, fmt.Errorf("%w: %w", ErrNoMemory, err)
		}
		return nil, fmt.Errorf("rm690b0: %w", err)
	}

	rect := image.Rect(0, 0, o.W, o.H)
	return &Dev{
		c:      c,
		rst:    o.RST,
		opts:   o,
		rect:   rect,
		frames: [2]*image565.Image{image565.New(rect), image565.New(rect)},
		pool:   pool,
		font:   glyph.Lookup(glyph.Font8x8),
		sleep:  time.Sleep,
	}, nil
}

// Panel commands.
const (
	cmdSLPIN   = 0x10
	cmdSLPOUT  = 0x11
	cmdINVOFF  = 0x20
	cmdINVON   = 0x21
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdTEON    = 0x35
	cmdCOLMOD  = 0x3A
	cmdWRDISBV = 0x51
	cmdPAGE    = 0xFE
)

// QSPI instruction bytes.
const (
	qspiWriteReg   = 0x02 // register write, single line
	qspiWritePixel = 0x32 // pixel write, quad lines
)

type initCmd struct {
	reg    byte
	params []byte
	delay  time.Duration
}

var initSequence = []initCmd{
	// Manufacturer page: SPI RAM writes, MIPI off, Swire setup
	{reg: cmdPAGE, params: []byte{0x20}},
	{reg: 0x26, params: []byte{0x0A}},
	{reg: 0x24, params: []byte{0x80}},
	{reg: 0x5A, params: []byte{0x51}},
	{reg: 0x5B, params: []byte{0x2E}},
	// User page
	{reg: cmdPAGE, params: []byte{0x00}},
	{reg: cmdCOLMOD, params: []byte{0x55}},
	{reg: 0xC2, params: []byte{0x00}, delay: 10 * time.Millisecond},
	{reg: cmdTEON, params: []byte{0x00}},
	// Keep the panel dark until it is awake
	{reg: cmdWRDISBV, params: []byte{0x00}},
	{reg: cmdSLPOUT, delay: 120 * time.Millisecond},
	{reg: cmdDISPON, delay: 10 * time.Millisecond},
	{reg: cmdWRDISBV, params: []byte{0xFF}},
}

// init resets the controller, sends the initialization sequence and clears
// the panel.
func (d *Dev) init() error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("rm690b0: failed to pull RST low: %w", err)
		}
		d.sleep(20 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("rm690b0: failed to pull RST high: %w", err)
		}
		d.sleep(150 * time.Millisecond)
	}

	for _, c := range initSequence {
		if err := d.writeReg(c.reg, c.params...); err != nil {
			return fmt.Errorf("rm690b0: init command 0x%02X: %w", c.reg, err)
		}
		if c.delay > 0 {
			d.sleep(c.delay)
		}
	}

	return d.Present(0, d.rect.Dy())
}

// writeReg sends a register write frame.
func (d *Dev) writeReg(reg byte, params ...byte) error {
	frame := make([]byte, 4+len(params))
	frame[0] = qspiWriteReg
	frame[2] = reg
	copy(frame[4:], params)
	return d.c.Tx(frame, nil)
}

// setWindow sets the RAM address window to x, y, w, h in panel pixels.
func (d *Dev) setWindow(x, y, w, h int) error {
	x0 := x + d.opts.ColumnOffset
	x1 := x0 + w - 1
	y0 := y + d.opts.RowOffset
	y1 := y0 + h - 1
	if err := d.writeReg(cmdCASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	return d.writeReg(cmdRASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw composes src onto the back buffer and presents it with Swap(true).
// The dst rectangle is clipped to the display.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.back(), dst, src, sp, draw.Src)
	return d.Swap(true)
}

// SetBrightness sets the panel brightness (0-255).
func (d *Dev) SetBrightness(level byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.writeReg(cmdWRDISBV, level)
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	cmd := byte(cmdINVOFF)
	if invert {
		cmd = cmdINVON
	}
	return d.writeReg(cmd)
}

// Halt turns the display off and puts the controller to sleep.
// Once Halt succeeds, panel operations return ErrHalted; create a new Dev
// to use the display again. A failed Halt leaves the device usable so it
// can be retried.
func (d *Dev) Halt() error {
	if err := d.writeReg(cmdDISPOFF); err != nil {
		return fmt.Errorf("rm690b0: display off: %w", err)
	}
	if err := d.writeReg(cmdSLPIN); err != nil {
		return fmt.Errorf("rm690b0: sleep in: %w", err)
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("rm690b0.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
