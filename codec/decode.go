package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/micheline-format/go-micheline/debug"
	"github.com/micheline-format/go-micheline/ir"
)

// Decode parses one tree from the front of buf. Trailing bytes after
// the first complete node are ignored; use DecodeAt to learn how many
// bytes the node occupied.
func (c *Codec[P]) Decode(buf []byte) (*ir.Node[P], error) {
	n, _, err := c.DecodeAt(buf, 0)
	return n, err
}

// DecodeAt parses one tree starting at off and returns it together
// with the number of bytes consumed.
func (c *Codec[P]) DecodeAt(buf []byte, off int) (*ir.Node[P], int, error) {
	if off < 0 || off > len(buf) {
		return nil, 0, fmt.Errorf("%w: offset %d outside buffer of %d bytes", ErrTruncated, off, len(buf))
	}
	r := &reader{buf: buf, off: off}
	n, err := c.decodeNode(r, 0)
	if err != nil {
		return nil, 0, err
	}
	return n, r.off - off, nil
}

func (c *Codec[P]) decodeNode(r *reader, depth int) (*ir.Node[P], error) {
	if depth > c.maxDepth {
		return nil, fmt.Errorf("%w: %d", ErrDepth, c.maxDepth)
	}
	start := r.off
	tag, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if debug.Wire() {
		debug.Logf("micheline: tag %d at offset %d: %s\n", tag, start, debug.Hex(r.buf[start:], 8))
	}
	switch tag {
	case tagInt:
		v, err := r.readZarith()
		if err != nil {
			return nil, err
		}
		return ir.FromInt[P](v), nil
	case tagString:
		blob, err := r.readBlob()
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(blob) {
			return nil, fmt.Errorf("%w: string at offset %d", ErrUTF8, start+1)
		}
		return ir.FromString[P](string(blob)), nil
	case tagBytes:
		blob, err := r.readBlob()
		if err != nil {
			return nil, err
		}
		return ir.FromBytes[P](blob), nil
	case tagSeq:
		args, err := c.decodeList(r, depth+1)
		if err != nil {
			return nil, err
		}
		return ir.FromSeq(args...), nil
	case tagPrim0, tagPrim0A, tagPrim1, tagPrim1A, tagPrim2, tagPrim2A, tagPrimN:
		return c.decodePrim(r, tag, depth)
	}
	return nil, fmt.Errorf("%w: %d at offset %d", ErrUnknownTag, tag, start)
}

func (c *Codec[P]) decodePrim(r *reader, tag byte, depth int) (*ir.Node[P], error) {
	rest := r.buf[r.off:]
	p, n, err := c.prims.DecodePrim(rest)
	if err != nil {
		if errors.Is(err, ErrPrim) || errors.Is(err, ErrTruncated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w at offset %d: %v", ErrPrim, r.off, err)
	}
	if n <= 0 || n > len(rest) {
		return nil, fmt.Errorf("%w: primitive codec consumed %d of %d bytes", ErrPrim, n, len(rest))
	}
	r.off += n

	node := ir.FromPrim(p)
	nargs := int(tag-tagPrim0) / 2
	if tag == tagPrimN {
		if node.Args, err = c.decodeList(r, depth+1); err != nil {
			return nil, err
		}
		// the list form always carries an annotation field
		if node.Annots, err = r.readAnnots(); err != nil {
			return nil, err
		}
		return node, nil
	}
	for i := 0; i < nargs; i++ {
		arg, err := c.decodeNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		node.Args = append(node.Args, arg)
	}
	if (tag-tagPrim0)%2 == 1 {
		if node.Annots, err = r.readAnnots(); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// decodeList reads a 4-byte big-endian length and then children until
// exactly that many payload bytes are consumed. Under- and over-runs
// are malformed input, not rounding slack.
func (c *Codec[P]) decodeList(r *reader, depth int) ([]*ir.Node[P], error) {
	size, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	if n := int(size); n < 0 || n > r.remaining() {
		return nil, fmt.Errorf("%w: list of %d bytes at offset %d, have %d", ErrTruncated, size, r.off, r.remaining())
	}
	end := r.off + int(size)
	var args []*ir.Node[P]
	for r.off < end {
		node, err := c.decodeNode(r, depth)
		if err != nil {
			return nil, err
		}
		args = append(args, node)
	}
	if r.off != end {
		return nil, fmt.Errorf("%w: list declared %d bytes, children consumed %d", ErrLength, size, int(size)+r.off-end)
	}
	return args, nil
}

// reader is a bounds-checked cursor over the input buffer. Every
// access that would run past the end yields ErrTruncated instead of
// panicking.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int { return len(r.buf) - r.off }

func (r *reader) readByte() (byte, error) {
	if r.remaining() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d", ErrTruncated, r.off)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *reader) read(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.off, r.remaining())
	}
	d := r.buf[r.off : r.off+n]
	r.off += n
	return d, nil
}

func (r *reader) readUint32() (uint32, error) {
	d, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d), nil
}

// readBlob reads a length-prefixed byte blob. The result is a copy;
// decoded trees never alias the input buffer.
func (r *reader) readBlob() ([]byte, error) {
	n, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	d, err := r.read(int(n))
	if err != nil {
		return nil, err
	}
	return bytes.Clone(d), nil
}
