/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: codec.go
Description: Item codec for the Akaylee Miner. Builds the bidirectional label/code
bijection from a transaction corpus and translates between string labels and the
dense integer codes the mining engine requires. Maps are built once and read-only
for the lifetime of the instance.
*/

package codec

import (
	"sort"
	"strconv"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
)

// Codec owns the label-to-code bijection for one corpus. The forward and
// reverse maps are exact inverses and immutable after Build; encoding and
// decoding through the same instance always agree on the code offset.
type Codec struct {
	offset  int
	forward map[string]int
	reverse map[int]string
	labels  []string // vocabulary in code order
}

// Build derives the forward and reverse maps from a transaction corpus.
// Distinct labels are sorted lexicographically before codes are assigned,
// so code assignment is reproducible across builds on the same corpus.
// Codes start at offset; the engine convention is 1-based.
func Build(transactions [][]string, offset int) (*Codec, error) {
	if offset < 0 {
		return nil, &interfaces.UsageError{Reason: "code offset must be non-negative"}
	}

	seen := make(map[string]struct{})
	for _, tx := range transactions {
		for _, label := range tx {
			seen[label] = struct{}{}
		}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	c := &Codec{
		offset:  offset,
		forward: make(map[string]int, len(labels)),
		reverse: make(map[int]string, len(labels)),
		labels:  labels,
	}
	for i, label := range labels {
		code := offset + i
		c.forward[label] = code
		c.reverse[code] = label
	}
	return c, nil
}

// BuildFrom is the polymorphic form of Build for untyped input: the value
// must classify as a transaction set, anything else is a usage error.
func BuildFrom(v interface{}, offset int) (*Codec, error) {
	if Classify(v) != ShapeTransactionSet {
		return nil, &interfaces.UsageError{Reason: "codec input must be a sequence of label sequences, got " + Classify(v).String()}
	}
	return Build(toTransactionSet(v), offset)
}

// Offset returns the code assigned to the first vocabulary label.
func (c *Codec) Offset() int { return c.offset }

// Len returns the vocabulary size.
func (c *Codec) Len() int { return len(c.labels) }

// Labels returns the vocabulary in code order.
func (c *Codec) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// EncodeLabel maps a single label to its code.
func (c *Codec) EncodeLabel(label string) (int, error) {
	code, ok := c.forward[label]
	if !ok {
		return 0, &interfaces.UnknownLabelError{Label: label}
	}
	return code, nil
}

// EncodeItems maps one transaction to its code sequence, preserving order.
// Duplicates within the transaction are kept, not deduplicated.
func (c *Codec) EncodeItems(items []string) ([]int, error) {
	codes := make([]int, len(items))
	for i, label := range items {
		code, err := c.EncodeLabel(label)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}
	return codes, nil
}

// EncodeAll maps a full transaction corpus, transaction-wise and
// order-preserving.
func (c *Codec) EncodeAll(transactions [][]string) ([][]int, error) {
	encoded := make([][]int, len(transactions))
	for i, tx := range transactions {
		codes, err := c.EncodeItems(tx)
		if err != nil {
			return nil, err
		}
		encoded[i] = codes
	}
	return encoded, nil
}

// Encode is the polymorphic entry point: it classifies v and dispatches to
// the typed encoder. A string yields an int, a []string yields []int.
// Unknown shapes are a usage error.
func (c *Codec) Encode(v interface{}) (interface{}, error) {
	switch Classify(v) {
	case ShapeLabel:
		return c.EncodeLabel(v.(string))
	case ShapeLabelSequence:
		return c.EncodeItems(toLabelSlice(v))
	case ShapeTransactionSet:
		if txs, ok := v.([][]string); ok {
			return c.EncodeAll(txs)
		}
	}
	return nil, &interfaces.UsageError{Reason: "encode input must be a label or a label sequence"}
}

// DecodeCode maps a code back to its label.
func (c *Codec) DecodeCode(code int) (string, error) {
	label, ok := c.reverse[code]
	if !ok {
		return "", &interfaces.UnknownCodeError{Token: strconv.Itoa(code)}
	}
	return label, nil
}

// DecodeToken decodes an engine output token, a decimal code rendered as a
// string. A token that is not a decimal integer is an unknown code.
func (c *Codec) DecodeToken(token string) (string, error) {
	code, err := strconv.Atoi(token)
	if err != nil {
		return "", &interfaces.UnknownCodeError{Token: token}
	}
	return c.DecodeCode(code)
}

// DecodeTokens decodes a sequence of output tokens, preserving order.
func (c *Codec) DecodeTokens(tokens []string) ([]string, error) {
	labels := make([]string, len(tokens))
	for i, tok := range tokens {
		label, err := c.DecodeToken(tok)
		if err != nil {
			return nil, err
		}
		labels[i] = label
	}
	return labels, nil
}

// DecodeCodes decodes a code sequence, preserving order.
func (c *Codec) DecodeCodes(codes []int) ([]string, error) {
	labels := make([]string, len(codes))
	for i, code := range codes {
		label, err := c.DecodeCode(code)
		if err != nil {
			return nil, err
		}
		labels[i] = label
	}
	return labels, nil
}

// DecodeAll decodes a sequence of code sequences, transaction-wise.
func (c *Codec) DecodeAll(codeLists [][]int) ([][]string, error) {
	out := make([][]string, len(codeLists))
	for i, codes := range codeLists {
		labels, err := c.DecodeCodes(codes)
		if err != nil {
			return nil, err
		}
		out[i] = labels
	}
	return out, nil
}

// toTransactionSet converts a classified transaction set to [][]string.
// Classify has already guaranteed homogeneity.
func toTransactionSet(v interface{}) [][]string {
	if txs, ok := v.([][]string); ok {
		return txs
	}
	vals := v.([]interface{})
	out := make([][]string, len(vals))
	for i, e := range vals {
		out[i] = toLabelSlice(e)
	}
	return out
}

// toLabelSlice converts a classified label sequence to []string. Classify
// has already guaranteed homogeneity.
func toLabelSlice(v interface{}) []string {
	if s, ok := v.([]string); ok {
		return s
	}
	vals := v.([]interface{})
	out := make([]string, len(vals))
	for i, e := range vals {
		out[i] = e.(string)
	}
	return out
}
