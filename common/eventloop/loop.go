package eventloop

import "sync"

// EventLoop runs posted events one at a time on the goroutine calling Run.
// High priority events always run before pending low priority ones.
type EventLoop struct {
	wake chan struct{}
	quit chan struct{}
	once sync.Once

	highQueue []func()
	lowQueue  []func()

	lock sync.Mutex
}

func NewEventLoop() *EventLoop {
	return &EventLoop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
}

func (s *EventLoop) Run() {
	for {
		select {
		case <-s.wake:
			for f := s.pop(); f != nil; f = s.pop() {
				f()
			}
		case <-s.quit:
			return
		}
	}
}

// Stop makes Run return after the event being executed, if any. Events still
// queued are dropped.
func (s *EventLoop) Stop() {
	s.once.Do(func() {
		close(s.quit)
	})
}

func (s *EventLoop) Stopped() bool {
	select {
	case <-s.quit:
		return true
	default:
		return false
	}
}

func (s *EventLoop) push(f func(), high bool) bool {
	if s.Stopped() {
		return false
	}
	s.lock.Lock()
	if high {
		s.highQueue = append(s.highQueue, f)
	} else {
		s.lowQueue = append(s.lowQueue, f)
	}
	s.lock.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return true
}

func (s *EventLoop) pop() func() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.highQueue) > 0 {
		result := s.highQueue[0]
		s.highQueue = s.highQueue[1:]
		return result
	}
	if len(s.lowQueue) > 0 {
		result := s.lowQueue[0]
		s.lowQueue = s.lowQueue[1:]
		return result
	}
	return nil
}

func (s *EventLoop) Post(f func()) bool {
	return s.push(f, false)
}

func (s *EventLoop) PostHighPri(f func()) bool {
	return s.push(f, true)
}

// Send posts f and blocks until it has run. It returns false if the loop
// stopped before f could run. Never call it from inside the loop.
func (s *EventLoop) Send(f func()) bool {
	done := make(chan struct{})
	if !s.push(func() {
		defer close(done)
		f()
	}, false) {
		return false
	}
	select {
	case <-done:
		return true
	case <-s.quit:
		return false
	}
}
