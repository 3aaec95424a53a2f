package bytecode

import (
	"encoding/binary"
	"fmt"

	"github.com/gitrdm/trees/internal/tree"
)

// decoder walks buf with an explicit cursor; every read method advances
// it and reports an error on truncation rather than panicking.
type decoder struct {
	buf []byte
	pos int
}

func (d *decoder) readByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, fmt.Errorf("bytecode: unexpected end of input at offset %d", d.pos)
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readUint32() (uint32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, fmt.Errorf("bytecode: unexpected end of input at offset %d", d.pos)
	}
	v := binary.BigEndian.Uint32(d.buf[d.pos : d.pos+4])
	d.pos += 4
	return v, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		return nil, fmt.Errorf("bytecode: unexpected end of input at offset %d", d.pos)
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// pendingNode is one node on the explicit decode stack: its own fields,
// already-decoded children so far, and the expand flags read from its
// header (one per expected child).
type pendingNode struct {
	procName    string
	quote       tree.Quote
	expandFlags []bool
	children    []tree.Arg
}

func (p *pendingNode) done() bool {
	return len(p.children) == len(p.expandFlags)
}

func (p *pendingNode) block() *tree.Block {
	return &tree.Block{ProcName: p.procName, Quote: p.quote, Args: p.children}
}

// Decode reverses Encode: it reads the header, skipping any trailing
// bytes beyond the five spec.md §6 defines (forward compatibility with a
// future minor version), then rebuilds the tree depth-first using an
// explicit stack of partially-filled nodes.
func Decode(buf []byte) (*tree.Block, error) {
	d := &decoder{buf: buf}

	v, err := d.readByte()
	if err != nil {
		return nil, err
	}
	if v != version {
		return nil, fmt.Errorf("bytecode: unsupported version %d", v)
	}
	hl, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	if hl < headerLength {
		return nil, fmt.Errorf("bytecode: header length %d shorter than the minimum %d", hl, headerLength)
	}
	if extra := int(hl) - headerLength; extra > 0 {
		if _, err := d.readBytes(extra); err != nil {
			return nil, err
		}
	}

	var stack []*pendingNode
	var root *tree.Block

	for {
		// A frame that already has all its children attaches to its
		// parent (or becomes the result, if it's the root) instead of
		// reading another node.
		if len(stack) > 0 && stack[len(stack)-1].done() {
			finished := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			child := finished.block()
			if len(stack) == 0 {
				root = child
				break
			}
			parent := stack[len(stack)-1]
			expand := parent.expandFlags[len(parent.children)]
			parent.children = append(parent.children, tree.Arg{Expand: expand, Child: child})
			continue
		}

		node, err := d.readNode()
		if err != nil {
			return nil, err
		}
		stack = append(stack, node)
	}

	if d.pos != len(buf) {
		return nil, fmt.Errorf("bytecode: %d trailing byte(s) after a complete tree", len(buf)-d.pos)
	}
	return root, nil
}

// readNode reads one node's fixed fields: kind, name, child count, and
// each child's expand flag. Its children are not read here; the
// caller's loop descends into them next, per the explicit-stack walk.
func (d *decoder) readNode() (*pendingNode, error) {
	kindByte, err := d.readByte()
	if err != nil {
		return nil, err
	}
	quote, err := quoteForKind(kindByte)
	if err != nil {
		return nil, err
	}
	nameLen, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	nameBytes, err := d.readBytes(int(nameLen))
	if err != nil {
		return nil, err
	}
	childCount, err := d.readByte()
	if err != nil {
		return nil, err
	}
	flags := make([]bool, childCount)
	for i := range flags {
		fb, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if fb != 0 && fb != 1 {
			return nil, fmt.Errorf("bytecode: expand-flag byte %d is neither 0 nor 1", fb)
		}
		flags[i] = fb == 1
	}
	return &pendingNode{
		procName:    string(nameBytes),
		quote:       quote,
		expandFlags: flags,
		children:    make([]tree.Arg, 0, childCount),
	}, nil
}
