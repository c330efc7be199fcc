package bionic

// Scheduler decides which words of the stream are eligible for emphasis.
// The count is shared by every line of a stream and never reset.
type Scheduler struct {
	cycle int
	count int
}

func NewScheduler(cycle int) Scheduler {
	if cycle < 1 {
		cycle = 1
	}
	return Scheduler{cycle: cycle}
}

// Next records one more word and reports whether it is eligible: every
// cycle-th word of the stream, counting the first word as 1.
func (s *Scheduler) Next() bool {
	s.count++
	return s.count%s.cycle == 0
}

// Count is the number of words seen so far.
func (s *Scheduler) Count() int { return s.count }
