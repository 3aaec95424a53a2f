// Package bytecode implements the deterministic wire format for a call
// tree (spec.md §4.5, §6 "Bytecode layout"). Encoding is depth-first,
// leftmost child first, using an explicit stack so it never recurses;
// decoding rebuilds the tree the same way, attaching each completed node
// to its parent's pending child slot. The codec is bijective:
// Decode(Encode(t)) equals t.
package bytecode

import (
	"encoding/binary"
	"fmt"

	"github.com/gitrdm/trees/internal/tree"
)

const (
	version      = 0x01
	headerLength = 5 // [version:u8][header-length:u32], includes itself

	kindNormal  = 1
	kindQuote   = 2
	kindClosure = 3
)

func kindForQuote(q tree.Quote) (byte, error) {
	switch q {
	case tree.None:
		return kindNormal, nil
	case tree.Quoted:
		return kindQuote, nil
	case tree.Closure:
		return kindClosure, nil
	default:
		return 0, fmt.Errorf("bytecode: unknown quote kind %d", q)
	}
}

func quoteForKind(k byte) (tree.Quote, error) {
	switch k {
	case kindNormal:
		return tree.None, nil
	case kindQuote:
		return tree.Quoted, nil
	case kindClosure:
		return tree.Closure, nil
	default:
		return 0, fmt.Errorf("bytecode: unknown block-kind byte %d", k)
	}
}

// encodeFrame is one pending node on the explicit encode stack: the
// block whose children (from childIndex onward) still need visiting.
type encodeFrame struct {
	block      *tree.Block
	childIndex int
}

// Encode serializes t per spec.md §6's layout: a five-byte header
// followed by each node, depth-first and leftmost-first.
func Encode(t *tree.Block) ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, version)
	buf = binary.BigEndian.AppendUint32(buf, headerLength)

	if t == nil {
		return nil, fmt.Errorf("bytecode: cannot encode a nil tree")
	}

	stack := []*encodeFrame{{block: t}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.childIndex == 0 {
			var err error
			buf, err = appendNodeHeader(buf, top.block)
			if err != nil {
				return nil, err
			}
		}
		if top.childIndex >= len(top.block.Args) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.block.Args[top.childIndex].Child
		top.childIndex++
		stack = append(stack, &encodeFrame{block: child})
	}
	return buf, nil
}

// appendNodeHeader appends one node's fixed fields: kind, name, child
// count, and the expand-flag for each child in left-to-right order. The
// children's own encodings are appended later, as the explicit stack in
// Encode visits them.
func appendNodeHeader(buf []byte, b *tree.Block) ([]byte, error) {
	kind, err := kindForQuote(b.Quote)
	if err != nil {
		return nil, err
	}
	if len(b.Args) > 0xff {
		return nil, fmt.Errorf("bytecode: block %q has %d children, more than 255", b.ProcName, len(b.Args))
	}

	buf = append(buf, kind)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(b.ProcName)))
	buf = append(buf, b.ProcName...)
	buf = append(buf, byte(len(b.Args)))
	for _, a := range b.Args {
		if a.Expand {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	return buf, nil
}
