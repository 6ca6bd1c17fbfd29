package domain

import "strings"

// NormalizeSize maps a blank size label to nil, the "no variant" value.
func NormalizeSize(size *string) *string {
	if size == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*size)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SizeOf is a convenience for literal size labels.
func SizeOf(label string) *string {
	return NormalizeSize(&label)
}

func sameSize(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneSize(size *string) *string {
	if size == nil {
		return nil
	}
	s := *size
	return &s
}

type variantMatch int

const (
	matchAnyVariant variantMatch = iota
	matchExactVariant
)

// VariantFilter selects which lines of a product an operation applies to.
// AllVariants matches every line of the product; OnlyVariant matches the
// line whose size equals the given one, where nil targets the no-variant line.
type VariantFilter struct {
	match variantMatch
	size  *string
}

func AllVariants() VariantFilter {
	return VariantFilter{match: matchAnyVariant}
}

func OnlyVariant(size *string) VariantFilter {
	return VariantFilter{match: matchExactVariant, size: NormalizeSize(size)}
}

func (f VariantFilter) Matches(size *string) bool {
	if f.match == matchAnyVariant {
		return true
	}
	return sameSize(f.size, size)
}

func (f VariantFilter) String() string {
	if f.match == matchAnyVariant {
		return "all variants"
	}
	if f.size == nil {
		return "no variant"
	}
	return "size " + *f.size
}
