package auth

import (
	"crypto/rand"
	"log"
	"math/big"
	"strings"
	"sync"
	"time"
)

const (
	// CodeTTL is how long an issued login code stays valid.
	CodeTTL = 5 * time.Minute
	// sweepInterval is how often expired codes are purged, independent of
	// verification attempts.
	sweepInterval = 60 * time.Second
)

// CodeDelivery sends a login code to its recipient. Production wires the SMTP
// implementation from the email package; the demo delivery just logs it.
type CodeDelivery interface {
	Send(to, code string) error
}

// LogDelivery prints the code to the server log. Used when SMTP is not
// configured, mirroring the demo mode of the original setup.
type LogDelivery struct{}

func (LogDelivery) Send(to, code string) error {
	log.Printf("login code for %s: %s (expires in %s)", to, code, CodeTTL)
	return nil
}

type issuedCode struct {
	code      string
	expiresAt time.Time
}

// CodeService generates, stores and validates six-digit login codes, keyed by
// normalized email. At most one live code per email; issuing overwrites.
type CodeService struct {
	mu       sync.Mutex
	codes    map[string]issuedCode
	delivery CodeDelivery
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewCodeService(delivery CodeDelivery) *CodeService {
	if delivery == nil {
		delivery = LogDelivery{}
	}
	return &CodeService{
		codes:    make(map[string]issuedCode),
		delivery: delivery,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// NormalizeEmail is the canonical form used as the code map key and for
// allow-list comparison: trimmed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateCode() string {
	// 6-digit numeric, leading digit nonzero
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the environment is broken; fall back to
		// the zero code rather than crash the login path.
		return "000000"
	}
	return big.NewInt(0).Add(n, big.NewInt(100000)).String()
}

// Issue creates a fresh code for the email, replacing any prior live code,
// and hands it to the delivery. The code is also returned so the demo flow
// can display it.
func (s *CodeService) Issue(email string) (string, error) {
	key := NormalizeEmail(email)
	code := generateCode()

	s.mu.Lock()
	s.codes[key] = issuedCode{code: code, expiresAt: s.now().Add(CodeTTL)}
	s.mu.Unlock()

	if err := s.delivery.Send(key, code); err != nil {
		return "", err
	}
	return code, nil
}

// Verify checks the code for the email. A match consumes the code; it cannot
// be used twice. Expired or missing codes fail closed.
func (s *CodeService) Verify(email, code string) bool {
	key := NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.codes[key]
	if !ok {
		return false
	}
	if s.now().After(stored.expiresAt) {
		delete(s.codes, key)
		return false
	}
	if stored.code != code {
		return false
	}
	delete(s.codes, key)
	return true
}

// sweepExpired removes every code whose expiry has passed.
func (s *CodeService) sweepExpired() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, stored := range s.codes {
		if now.After(stored.expiresAt) {
			delete(s.codes, key)
		}
	}
}

// StartSweeper launches the periodic expiry sweep. Stop with Close.
func (s *CodeService) StartSweeper() {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweepExpired()
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the sweeper goroutine.
func (s *CodeService) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}
