package oauth

import "time"

func (s *StateSigner) SetNow(now func() time.Time) {
	s.now = now
}
