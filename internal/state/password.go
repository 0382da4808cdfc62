package state

import (
	"sync"
	"unicode/utf8"
)

// MinPasswordLength is the length needed for the length check.
const MinPasswordLength = 8

// Checks lists which password rules a candidate satisfies.
type Checks struct {
	Length  bool
	Upper   bool
	Lower   bool
	Digit   bool
	Special bool
}

// Passed returns the number of satisfied rules.
func (c Checks) Passed() int {
	n := 0
	for _, ok := range []bool{c.Length, c.Upper, c.Lower, c.Digit, c.Special} {
		if ok {
			n++
		}
	}
	return n
}

// Level is the label and color of a score.
type Level struct {
	Label string
	Color string
}

var levels = [...]Level{
	{Label: "Very Weak", Color: "#ef4444"},
	{Label: "Weak", Color: "#f97316"},
	{Label: "Fair", Color: "#eab308"},
	{Label: "Good", Color: "#84cc16"},
	{Label: "Strong", Color: "#22c55e"},
	{Label: "Very Strong", Color: "#10b981"},
}

// MaxScore is the best possible score.
const MaxScore = len(levels) - 1

// LevelFor maps a score to its level, clamping out-of-range scores.
func LevelFor(score int) Level {
	if score < 0 {
		score = 0
	}
	if score > MaxScore {
		score = MaxScore
	}
	return levels[score]
}

// CheckPassword evaluates every rule against candidate. Upper, lower and
// digit mean ASCII letters and digits; anything else counts as a symbol.
func CheckPassword(candidate string) Checks {
	var c Checks
	c.Length = utf8.RuneCountInString(candidate) >= MinPasswordLength
	for _, r := range candidate {
		switch {
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= '0' && r <= '9':
			c.Digit = true
		default:
			c.Special = true
		}
	}
	return c
}

// ScorePassword returns the number of rules candidate satisfies.
func ScorePassword(candidate string) int {
	return CheckPassword(candidate).Passed()
}

// PasswordStrength tracks a candidate password as the user types.
type PasswordStrength struct {
	mu        sync.RWMutex
	candidate string
	subs      subscribers
}

// NewPasswordStrength returns a tracker with an empty candidate.
func NewPasswordStrength() *PasswordStrength {
	return &PasswordStrength{}
}

// Subscribe registers fn to run after every change.
func (p *PasswordStrength) Subscribe(fn func()) (unsubscribe func()) {
	return p.subs.subscribe(fn)
}

// Update replaces the candidate.
func (p *PasswordStrength) Update(candidate string) {
	p.mu.Lock()
	p.candidate = candidate
	p.mu.Unlock()
	p.subs.notify()
}

// Candidate returns the current candidate.
func (p *PasswordStrength) Candidate() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.candidate
}

// Checks evaluates the current candidate.
func (p *PasswordStrength) Checks() Checks {
	return CheckPassword(p.Candidate())
}

// Score returns 0 through MaxScore.
func (p *PasswordStrength) Score() int {
	return ScorePassword(p.Candidate())
}

// Level returns the label and color of the current score.
func (p *PasswordStrength) Level() Level {
	return LevelFor(p.Score())
}
