/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classifier.go
Description: Input shape classifier for the Akaylee Miner. Determines whether a value
is a single item label, a transaction (sequence of labels), or a transaction set
(sequence of label sequences), so the codec can dispatch on a typed shape instead
of inspecting values at every call site.
*/

package codec

// Shape is the classified form of a codec input value.
type Shape int

const (
	// ShapeUnknown marks values the codec must reject with a usage error.
	ShapeUnknown Shape = iota
	// ShapeLabel is a single item label.
	ShapeLabel
	// ShapeLabelSequence is one transaction: an ordered sequence of labels.
	ShapeLabelSequence
	// ShapeTransactionSet is a sequence of transactions.
	ShapeTransactionSet
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeLabel:
		return "label"
	case ShapeLabelSequence:
		return "label-sequence"
	case ShapeTransactionSet:
		return "transaction-set"
	}
	return "unknown"
}

// Classify inspects a value and returns its shape. Only homogeneous values
// classify: a string, a []string, a [][]string, or the equivalent built from
// []interface{} elements. Anything mixed or of another type is ShapeUnknown.
//
// Empty sequences classify as their sequence shape: every element of an
// empty []string trivially satisfies the label predicate, so an empty
// corpus is accepted upstream and yields an empty vocabulary.
func Classify(v interface{}) Shape {
	switch val := v.(type) {
	case string:
		return ShapeLabel
	case []string:
		return ShapeLabelSequence
	case [][]string:
		return ShapeTransactionSet
	case []interface{}:
		return classifySlice(val)
	}
	return ShapeUnknown
}

// classifySlice resolves a []interface{} to a sequence shape, requiring
// every element to classify the same way.
func classifySlice(vals []interface{}) Shape {
	if len(vals) == 0 {
		return ShapeLabelSequence
	}
	elem := Classify(vals[0])
	if elem != ShapeLabel && elem != ShapeLabelSequence {
		return ShapeUnknown
	}
	for _, v := range vals[1:] {
		if Classify(v) != elem {
			return ShapeUnknown
		}
	}
	if elem == ShapeLabel {
		return ShapeLabelSequence
	}
	return ShapeTransactionSet
}
