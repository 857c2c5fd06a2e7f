package builder

import "strconv"

// IDFn maps a vertex index to its ID. It must be injective.
type IDFn func(idx int) string

// DefaultIDFn renders an index in base 10: "0","1","2",...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn renders 0→"A", 25→"Z", 26→"AA", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return DefaultIDFn(idx)
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn renders prefix followed by the index: "v0","v1",...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb is WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
