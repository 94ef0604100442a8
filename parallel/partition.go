package parallel

// Partition is the half-open range [Start, End) of one chunk.
type Partition struct {
	Start, End int
}

// Len returns the number of elements in the chunk.
func (p Partition) Len() int {
	return p.End - p.Start
}

// Partitions splits [0, n) into min(threads, n) contiguous chunks in
// ascending order. Sizes differ by at most one, and the first n % count
// chunks hold the extra element. threads below 1 is treated as 1; n == 0
// yields no chunks.
func Partitions(n, threads int) []Partition {
	if n <= 0 {
		return nil
	}

	count := min(max(threads, 1), n)
	base, remainder := n/count, n%count

	parts := make([]Partition, count)
	start := 0
	for i := range parts {
		size := base
		if i < remainder {
			size++
		}
		parts[i] = Partition{Start: start, End: start + size}
		start += size
	}
	return parts
}
