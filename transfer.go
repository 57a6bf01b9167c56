package rm690b0

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/devices/v3/rm690b0/image565"
	"periph.io/x/devices/v3/rm690b0/staging"
)

// TransferError reports a chunk that could not be sent after its retry.
// Lines before Y0 reached the panel; no line from Y0 on was sent by the
// failed pass.
type TransferError struct {
	Y0, Y1 int   // Line range of the failed chunk
	Err    error // Error of the last attempt
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("rm690b0: transfer of lines %d-%d failed: %v", e.Y0, e.Y1-1, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransferFault.
func (e *TransferError) Is(target error) bool {
	return target == ErrTransferFault
}

// chunk is a band of consecutive scanlines [y0, y1).
type chunk struct {
	y0, y1 int
}

func (c chunk) lines() int {
	return c.y1 - c.y0
}

// chunks partitions [y0, y1) into bands of at most maxLines lines, in
// increasing y. Only the last band can be shorter.
func chunks(y0, y1, maxLines int) []chunk {
	if y1 <= y0 || maxLines <= 0 {
		return nil
	}
	out := make([]chunk, 0, (y1-y0+maxLines-1)/maxLines)
	for y := y0; y < y1; y += maxLines {
		out = append(out, chunk{y0: y, y1: min(y+maxLines, y1)})
	}
	return out
}

// settleDelay returns how long the controller needs to absorb a pixel burst.
func (o *Opts) settleDelay(pixels int) time.Duration {
	d := time.Duration(pixels/o.SettleDivisor) * time.Microsecond
	return min(max(d, o.SettleMin), o.SettleMax)
}

// stagingSize returns the size of one staging buffer: the pixel frame
// header plus the largest chunk.
func stagingSize(o *Opts) int {
	return 4 + o.W*o.MaxLines*2
}

// stage copies the lines of c from the front buffer into buf as a pixel
// frame and returns the frame.
func (d *Dev) stage(buf []byte, c chunk) []byte {
	front := d.frames[d.front]
	n := 4 + d.rect.Dx()*c.lines()*2
	frame := buf[:n]
	frame[0], frame[1], frame[2], frame[3] = qspiWritePixel, 0x00, cmdRAMWR, 0x00
	i := 4
	for y := c.y0; y < c.y1; y++ {
		for _, px := range front.Row(y) {
			frame[i] = byte(px >> 8)
			frame[i+1] = byte(px)
			i += 2
		}
	}
	return frame
}

// issue sets the address window for c and sends the staged frame.
func (d *Dev) issue(c chunk, frame []byte) error {
	if err := d.setWindow(0, c.y0, d.rect.Dx(), c.lines()); err != nil {
		return err
	}
	return d.c.Tx(frame, nil)
}

// transfer sends lines [y0, y1) of the front buffer to the panel.
func (d *Dev) transfer(buf []byte, y0, y1 int) error {
	for _, c := range chunks(y0, y1, d.opts.MaxLines) {
		frame := d.stage(buf, c)
		err := d.issue(c, frame)
		if err != nil {
			d.sleep(d.opts.RetryBackoff)
			err = d.issue(c, frame)
		}
		if err != nil {
			return &TransferError{Y0: c.y0, Y1: c.y1, Err: err}
		}
		d.sleep(d.opts.settleDelay(d.rect.Dx() * c.lines()))
	}
	return nil
}

// acquire takes a staging buffer for one transfer pass.
func (d *Dev) acquire() ([]byte, error) {
	if d.halted {
		return nil, ErrHalted
	}
	buf, err := d.pool.Get()
	if errors.Is(err, staging.ErrExhausted) {
		return nil, ErrBusy
	}
	return buf, err
}

// clampLines limits [y0, y1) to the display height.
func (d *Dev) clampLines(y0, y1 int) (int, int) {
	return max(y0, 0), min(y1, d.rect.Dy())
}

// Present sends lines [y0, y1) of the visible framebuffer to the panel
// without swapping. It is the way to resend a frame after a
// *TransferError.
func (d *Dev) Present(y0, y1 int) error {
	buf, err := d.acquire()
	if err != nil {
		return err
	}
	defer d.pool.Put(buf)
	y0, y1 = d.clampLines(y0, y1)
	return d.transfer(buf, y0, y1)
}

// Swap makes the back buffer visible and sends it to the panel.
//
// When copyForward is true the new visible frame is then copied into the
// new back buffer, so drawing continues from what is on screen. The roles
// are exchanged and the copy is made even when the transfer fails; the
// returned *TransferError only reports that the panel did not receive the
// whole frame.
func (d *Dev) Swap(copyForward bool) error {
	return d.SwapLines(copyForward, 0, d.rect.Dy())
}

// SwapLines is like Swap but only sends lines [y0, y1) of the new frame.
func (d *Dev) SwapLines(copyForward bool, y0, y1 int) error {
	buf, err := d.acquire()
	if err != nil {
		return err
	}
	defer d.pool.Put(buf)

	d.front ^= 1
	y0, y1 = d.clampLines(y0, y1)
	err = d.transfer(buf, y0, y1)
	if copyForward {
		d.back().CopyFrom(d.frames[d.front])
	}
	return err
}

// back returns the framebuffer drawing operations write into.
func (d *Dev) back() *image565.Image {
	return d.frames[d.front^1]
}
