package hitch

// Inject queues cmds to replace the sampled input for the next ticks
// consecutive calls to Tick. A ticks value below 1 queues a single tick.
func (s *Session) Inject(cmds Commands, ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	for i := 0; i < ticks; i++ {
		s.injectQueue = append(s.injectQueue, cmds)
	}
}

// InjectTap queues cmds for exactly one tick followed by one empty tick, so
// edge-style commands such as Relatch or Reset fire once.
func (s *Session) InjectTap(cmds Commands) {
	s.injectQueue = append(s.injectQueue, cmds, 0)
}

// Pending returns the number of injected ticks still queued.
func (s *Session) Pending() int { return len(s.injectQueue) }

// popInjected removes the head of the inject queue.
func (s *Session) popInjected() (Commands, bool) {
	if len(s.injectQueue) == 0 {
		return 0, false
	}
	c := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return c, true
}
