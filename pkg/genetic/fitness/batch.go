package fitness

// Partition splits items into consecutive groups of size. The last group holds
// the remainder when len(items) is not a multiple of size. A size below 2
// yields one group per item.
func Partition(items []int, size int) [][]int {
	if size < 1 {
		size = 1
	}
	groups := make([][]int, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		groups = append(groups, items[start:end])
	}
	return groups
}
