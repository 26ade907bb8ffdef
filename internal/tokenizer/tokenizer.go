package tokenizer

// Encode maps s to a fixed-length sequence of maxLen embedding-table
// indices: left-aligned, zero-padded on the right when s is shorter
// than maxLen, truncated on the right when longer. Characters outside
// the 97-symbol vocabulary map to index 0, the same index used for
// padding.
func Encode(s string, maxLen int) []int {
	ids := make([]int, maxLen)
	i := 0
	for _, c := range s {
		if i >= maxLen {
			break
		}
		ids[i] = indexOf(c)
		i++
	}
	// ids[i:] is already zero-valued (Go slices zero-initialize).
	return ids
}

// EncodeBatch encodes every string in ss with the same maxLen.
func EncodeBatch(ss []string, maxLen int) [][]int {
	out := make([][]int, len(ss))
	for i, s := range ss {
		out[i] = Encode(s, maxLen)
	}
	return out
}
