package model

import "fmt"

// NumberPool tracks which partition numbers (1..256) are assigned on one
// device. Callers are responsible for keeping it in step with the region
// list; the pool itself only stores used/unused bits.
type NumberPool struct {
	used [MaxPartitions]bool
}

// FindAvailable marks the lowest unused number as used and returns it.
// The second return is false when all 256 numbers are taken.
func (p *NumberPool) FindAvailable() (uint16, bool) {
	for i := range p.used {
		if !p.used[i] {
			p.used[i] = true
			return uint16(i + 1), true
		}
	}
	return 0, false
}

// SetUsed marks a number as assigned.
func (p *NumberPool) SetUsed(n uint16) {
	p.used[p.index(n)] = true
}

// SetUnused releases a number.
func (p *NumberPool) SetUnused(n uint16) {
	p.used[p.index(n)] = false
}

// IsUsed reports whether a number is assigned.
func (p *NumberPool) IsUsed(n uint16) bool {
	return p.used[p.index(n)]
}

func (p *NumberPool) index(n uint16) int {
	if n < 1 || n > MaxPartitions {
		panic(fmt.Sprintf("partition number %d out of range 1..%d", n, MaxPartitions))
	}
	return int(n - 1)
}
