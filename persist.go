package barneshut

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// The endianness flags mirror the sentinel-flag-prefixed header used by
// gotetra's snapshot format: 0 means big-endian, -1 means little-
// endian. Encode always writes little-endian; Decode honors whichever
// flag it reads, so a big-endian encoding produced elsewhere still
// round-trips.
const (
	persistBigEndianFlag    int32 = 0
	persistLittleEndianFlag int32 = -1
	persistFormatVersion    int32 = 1
)

// Encode serializes tree into a self-contained, versioned binary
// encoding: a small header (endianness flag, format version, node
// count, root index, bounding cube) followed by a flat record per node,
// each carrying its own body count and bodies. The
// layout is stable within a format version and round-trips
// byte-for-byte; it carries no external pointers, matching the tree's
// own in-memory representation (spec.md §6, §9).
func Encode(tree *Tree) ([]byte, error) {
	if tree == nil {
		return nil, fmt.Errorf("barneshut: cannot encode a nil tree")
	}

	var buf bytes.Buffer
	end := binary.LittleEndian

	write := func(v any) error { return binary.Write(&buf, end, v) }

	if err := write(persistLittleEndianFlag); err != nil {
		return nil, err
	}
	if err := write(persistFormatVersion); err != nil {
		return nil, err
	}
	if err := write(int64(len(tree.Nodes))); err != nil {
		return nil, err
	}
	if err := write(tree.Root); err != nil {
		return nil, err
	}
	if err := write(tree.Bounds.Center); err != nil {
		return nil, err
	}
	if err := write(tree.Bounds.HalfExtent); err != nil {
		return nil, err
	}

	for _, n := range tree.Nodes {
		if err := encodeNode(&buf, end, n); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func encodeNode(w io.Writer, end binary.ByteOrder, n Node) error {
	write := func(v any) error { return binary.Write(w, end, v) }

	if err := write(n.Center); err != nil {
		return err
	}
	if err := write(n.Size); err != nil {
		return err
	}
	if err := write(n.MassTotal); err != nil {
		return err
	}
	if err := write(n.CenterOfMass); err != nil {
		return err
	}
	isLeaf := byte(0)
	if n.IsLeaf {
		isLeaf = 1
	}
	if err := write(isLeaf); err != nil {
		return err
	}
	if err := write(n.Children); err != nil {
		return err
	}
	if err := write(int32(len(n.Bodies))); err != nil {
		return err
	}
	for _, body := range n.Bodies {
		if err := write(body.Position); err != nil {
			return err
		}
		if err := write(body.Mass); err != nil {
			return err
		}
		if err := write(int64(body.ID)); err != nil {
			return err
		}
	}
	return nil
}

// Decode reconstructs a Tree previously produced by Encode.
func Decode(data []byte) (*Tree, error) {
	r := bytes.NewReader(data)

	var flag int32
	if err := binary.Read(r, binary.LittleEndian, &flag); err != nil {
		return nil, fmt.Errorf("barneshut: reading endianness flag: %w", err)
	}
	var end binary.ByteOrder = binary.LittleEndian
	if flag == persistBigEndianFlag {
		end = binary.BigEndian
	} else if flag != persistLittleEndianFlag {
		return nil, fmt.Errorf("barneshut: unrecognized endianness flag %d", flag)
	}

	var version int32
	if err := binary.Read(r, end, &version); err != nil {
		return nil, fmt.Errorf("barneshut: reading format version: %w", err)
	}
	if version != persistFormatVersion {
		return nil, fmt.Errorf("barneshut: unsupported format version %d", version)
	}

	var nodeCount int64
	if err := binary.Read(r, end, &nodeCount); err != nil {
		return nil, fmt.Errorf("barneshut: reading node count: %w", err)
	}

	tree := &Tree{}
	if err := binary.Read(r, end, &tree.Root); err != nil {
		return nil, fmt.Errorf("barneshut: reading root index: %w", err)
	}
	if err := binary.Read(r, end, &tree.Bounds.Center); err != nil {
		return nil, fmt.Errorf("barneshut: reading bounds center: %w", err)
	}
	if err := binary.Read(r, end, &tree.Bounds.HalfExtent); err != nil {
		return nil, fmt.Errorf("barneshut: reading bounds half-extent: %w", err)
	}

	tree.Nodes = make([]Node, nodeCount)
	for i := range tree.Nodes {
		n, err := decodeNode(r, end)
		if err != nil {
			return nil, fmt.Errorf("barneshut: reading node %d: %w", i, err)
		}
		tree.Nodes[i] = n
	}
	return tree, nil
}

func decodeNode(r io.Reader, end binary.ByteOrder) (Node, error) {
	var n Node
	if err := binary.Read(r, end, &n.Center); err != nil {
		return n, err
	}
	if err := binary.Read(r, end, &n.Size); err != nil {
		return n, err
	}
	if err := binary.Read(r, end, &n.MassTotal); err != nil {
		return n, err
	}
	if err := binary.Read(r, end, &n.CenterOfMass); err != nil {
		return n, err
	}
	var isLeaf byte
	if err := binary.Read(r, end, &isLeaf); err != nil {
		return n, err
	}
	n.IsLeaf = isLeaf != 0
	if err := binary.Read(r, end, &n.Children); err != nil {
		return n, err
	}
	var bodyCount int32
	if err := binary.Read(r, end, &bodyCount); err != nil {
		return n, err
	}
	if bodyCount > 0 {
		n.Bodies = make([]leafBody, bodyCount)
		for i := range n.Bodies {
			if err := binary.Read(r, end, &n.Bodies[i].Position); err != nil {
				return n, err
			}
			if err := binary.Read(r, end, &n.Bodies[i].Mass); err != nil {
				return n, err
			}
			var id int64
			if err := binary.Read(r, end, &id); err != nil {
				return n, err
			}
			n.Bodies[i].ID = int(id)
		}
	}
	return n, nil
}
