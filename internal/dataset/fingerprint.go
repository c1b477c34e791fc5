package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/cbergoon/merkletree"

	"github.com/synthlab/tabsynth/internal/tserr"
)

// Fingerprint identifies the exact content of a dataset: per-column
// SHA-256 hashes combined into a merkle root. Two datasets with the same
// columns, order, and values have the same root; any change to a single
// cell changes the root and exactly one column hash, so drill-down to
// the changed column is cheap.
type Fingerprint struct {
	Root    string            // Merkle root over column hashes, in column order
	Columns map[string]string // Column name -> content hash
}

// columnContent implements merkletree.Content for column-level hashing.
type columnContent struct {
	hash string
}

func (c columnContent) CalculateHash() ([]byte, error) {
	h := sha256.Sum256([]byte(c.hash))
	return h[:], nil
}

func (c columnContent) Equals(other merkletree.Content) (bool, error) {
	o, ok := other.(columnContent)
	if !ok {
		return false, nil
	}
	return c.hash == o.hash, nil
}

// ColumnHash computes the content hash of a single column: name, kind,
// and every value in order.
func ColumnHash(c *Column) string {
	h := sha256.New()
	h.Write([]byte(c.Name))
	h.Write([]byte{0})
	h.Write([]byte(c.Kind.String()))
	h.Write([]byte{0})
	n := c.Len()
	h.Write([]byte(strconv.Itoa(n)))
	for i := 0; i < n; i++ {
		h.Write([]byte{0})
		h.Write([]byte(c.Value(i)))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ComputeFingerprint computes the merkle fingerprint of a dataset.
// An empty dataset gets the hash of the empty input.
func ComputeFingerprint(d *Dataset) (*Fingerprint, error) {
	result := &Fingerprint{Columns: make(map[string]string, len(d.Columns))}

	if len(d.Columns) == 0 {
		sum := sha256.Sum256(nil)
		result.Root = hex.EncodeToString(sum[:])
		return result, nil
	}

	contents := make([]merkletree.Content, 0, len(d.Columns))
	for _, c := range d.Columns {
		hash := ColumnHash(c)
		result.Columns[c.Name] = hash
		contents = append(contents, columnContent{hash: hash})
	}

	tree, err := merkletree.NewTree(contents)
	if err != nil {
		return nil, tserr.Wrap(tserr.ErrInternal, err, "failed to build merkle tree")
	}

	result.Root = hex.EncodeToString(tree.MerkleRoot())
	return result, nil
}

// ChangedColumns compares two fingerprints and returns the names of
// columns present in both whose hashes differ.
func (f *Fingerprint) ChangedColumns(other *Fingerprint) []string {
	var changed []string
	for name, hash := range f.Columns {
		if otherHash, ok := other.Columns[name]; ok && otherHash != hash {
			changed = append(changed, name)
		}
	}
	return changed
}
