package models

import "time"

// Start moves a scheduled stream to live
func (s *Stream) Start(now time.Time) bool {
	if s.Status != StreamScheduled {
		return false
	}
	startedAt := now
	s.Status = StreamLive
	s.StartedAt = &startedAt
	s.Version++
	return true
}

// End moves a live stream to ended and fixes its duration
func (s *Stream) End(now time.Time) bool {
	if s.Status != StreamLive {
		return false
	}
	endedAt := now
	s.Status = StreamEnded
	s.EndedAt = &endedAt
	if s.StartedAt != nil {
		d := endedAt.Sub(*s.StartedAt)
		s.Duration = &d
	}
	s.Version++
	return true
}

// Cancel stops a stream that has not finished yet
func (s *Stream) Cancel() bool {
	if s.Status != StreamScheduled && s.Status != StreamLive {
		return false
	}
	s.Status = StreamCancelled
	s.Version++
	return true
}

// UpdateViewers records the current audience; the peak never decreases
func (s *Stream) UpdateViewers(count int) {
	s.ViewersCount = count
	if count > s.PeakViewers {
		s.PeakViewers = count
	}
	s.Version++
}

// IsLive reports whether the stream currently accepts viewers
func (s Stream) IsLive() bool {
	return s.Status == StreamLive
}

// IsTerminal reports whether the stream can no longer change status
func (s Stream) IsTerminal() bool {
	return s.Status == StreamEnded || s.Status == StreamCancelled
}

// Elapsed is the fixed duration once ended, or the running time while live
func (s Stream) Elapsed(now time.Time) *time.Duration {
	if s.Duration != nil {
		d := *s.Duration
		return &d
	}
	if s.StartedAt == nil || s.Status != StreamLive {
		return nil
	}
	d := now.Sub(*s.StartedAt)
	return &d
}
