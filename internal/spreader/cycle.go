package spreader

// cycle — круговой счётчик в диапазоне [0, count).
// Живёт только в рамках одного вызова, поэтому без блокировок.
type cycle struct {
	v     int
	count int
}

func newCycle(count int) cycle {
	return cycle{count: count}
}

// next возвращает текущий индекс и сдвигает счётчик по кругу.
func (c *cycle) next() int {
	v := c.v

	if c.v == c.count-1 {
		c.v = 0
	} else {
		c.v++
	}

	return v
}
