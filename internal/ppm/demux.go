package ppm

import (
	"bytes"
	"errors"
	"math"
	"strconv"
)

var magic = []byte("P6\n")

// errNeedMore means the buffer does not yet hold a complete frame;
// errMalformed means the bytes at the head of the buffer cannot be a
// frame header.
var (
	errNeedMore  = errors.New("need more data")
	errMalformed = errors.New("malformed header")
)

// Demuxer incrementally slices a chunked P6 byte stream into frames.
// Feed appends each chunk to an internal buffer and extracts every
// complete frame currently buffered; partial trailing bytes wait for the
// next call. A Demuxer belongs to a single stream and is not safe for
// concurrent use.
type Demuxer struct {
	buf []byte
}

// Feed appends chunk and returns all frames now extractable, in stream
// order. It never returns a partial or truncated frame: a frame is
// extracted only once its full header and pixel payload are buffered.
func (d *Demuxer) Feed(chunk []byte) []Frame {
	d.buf = append(d.buf, chunk...)

	var frames []Frame
	for {
		f, ok := d.extractOne()
		if !ok {
			return frames
		}
		frames = append(frames, f)
	}
}

// Buffered reports how many bytes are held awaiting a complete frame.
func (d *Demuxer) Buffered() int {
	return len(d.buf)
}

// extractOne takes a single frame off the head of the buffer. Bytes
// before a magic tag are discarded as stream noise; a malformed header
// drops one byte and rescans so a bad region can never stall the stream.
func (d *Demuxer) extractOne() (Frame, bool) {
	for {
		if !bytes.HasPrefix(d.buf, magic) {
			i := bytes.Index(d.buf, magic)
			if i < 0 {
				// Keep a tail that could still grow into a magic tag.
				if keep := len(magic) - 1; len(d.buf) > keep {
					d.buf = d.buf[len(d.buf)-keep:]
				}
				return Frame{}, false
			}
			d.buf = d.buf[i:]
		}

		f, n, err := parseFrame(d.buf)
		switch {
		case err == nil:
			d.buf = d.buf[n:]
			return f, true
		case errors.Is(err, errNeedMore):
			return Frame{}, false
		default:
			d.buf = d.buf[1:]
		}
	}
}

// parseFrame decodes one frame at the head of buf, which must start with
// the magic tag, returning the frame and the number of bytes it
// occupies. Comment lines are honored only between the magic tag and the
// dimension line, which is where netpbm writers place them.
func parseFrame(buf []byte) (Frame, int, error) {
	off := len(magic)

	for {
		if off >= len(buf) {
			return Frame{}, 0, errNeedMore
		}
		if buf[off] != '#' {
			break
		}
		nl := bytes.IndexByte(buf[off:], '\n')
		if nl < 0 {
			return Frame{}, 0, errNeedMore
		}
		off += nl + 1
	}

	dims, next, err := readLine(buf, off)
	if err != nil {
		return Frame{}, 0, err
	}
	fields := bytes.Fields(dims)
	if len(fields) != 2 {
		return Frame{}, 0, errMalformed
	}
	width, err := parseDecimal(fields[0])
	if err != nil {
		return Frame{}, 0, errMalformed
	}
	height, err := parseDecimal(fields[1])
	if err != nil {
		return Frame{}, 0, errMalformed
	}
	off = next

	maxLine, next, err := readLine(buf, off)
	if err != nil {
		return Frame{}, 0, err
	}
	maxVal, err := parseDecimal(bytes.TrimSpace(maxLine))
	if err != nil {
		return Frame{}, 0, errMalformed
	}
	off = next

	// Guard the size computation against overflow from absurd headers.
	if width > 0 && height > math.MaxInt/3/width {
		return Frame{}, 0, errMalformed
	}
	size := width * height * 3
	if len(buf)-off < size {
		return Frame{}, 0, errNeedMore
	}

	pix := make([]byte, size)
	copy(pix, buf[off:off+size])
	return Frame{Width: width, Height: height, MaxVal: maxVal, Pix: pix}, off + size, nil
}

func readLine(buf []byte, off int) ([]byte, int, error) {
	nl := bytes.IndexByte(buf[off:], '\n')
	if nl < 0 {
		return nil, 0, errNeedMore
	}
	return buf[off : off+nl], off + nl + 1, nil
}

// parseDecimal accepts non-negative decimal integers only; a sign or any
// other stray byte makes the header malformed.
func parseDecimal(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, errMalformed
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, errMalformed
		}
	}
	return strconv.Atoi(string(b))
}
