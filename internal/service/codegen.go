package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/aidar/greenlink/internal/domain"
)

// Word lists used as join code prefixes
var (
	ClubCodeWords = []string{"EAGLES", "LIONS", "TIGERS", "BEARS", "WOLVES", "HAWKS", "STORM", "FIRE", "THUNDER", "LIGHTNING"}
	TeamCodeWords = []string{"SQUAD", "TEAM", "LIONS", "TIGERS", "EAGLES", "HAWKS", "STORM", "FIRE", "STARS", "UNITED"}
)

const (
	codeNumberMin = 1000
	codeNumberMax = 9999

	// DefaultCodeAttempts bounds the candidates drawn for one code
	DefaultCodeAttempts = 64
)

// ExistsFunc reports whether a code is already used.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Candidate builds one join code: a word from words followed by a number in [1000, 9999].
func Candidate(rng *rand.Rand, words []string) string {
	word := words[rng.Intn(len(words))]
	number := codeNumberMin + rng.Intn(codeNumberMax-codeNumberMin+1)
	return word + strconv.Itoa(number)
}

// CodeGenerator draws human-readable join codes from a word list
type CodeGenerator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	words       []string
	maxAttempts int
}

// NewCodeGenerator creates a generator over words with its own random source.
// A nil src seeds from the clock; maxAttempts <= 0 means DefaultCodeAttempts.
func NewCodeGenerator(words []string, src rand.Source, maxAttempts int) *CodeGenerator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultCodeAttempts
	}
	return &CodeGenerator{
		rng:         rand.New(src),
		words:       words,
		maxAttempts: maxAttempts,
	}
}

// Next returns a fresh candidate without checking uniqueness.
func (g *CodeGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Candidate(g.rng, g.words)
}

// Generate returns the first candidate the exists oracle reports as free.
// A free code here is only free at the moment of the check; callers still
// handle a uniqueness violation on insert.
func (g *CodeGenerator) Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code := g.Next()
		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code %s: %w", code, err)
		}
		if !taken {
			return code, nil
		}
	}

	return "", domain.ErrCodeSpaceExhausted
}

// maxCodeInserts bounds inserts that lose a race for a freshly checked code
const maxCodeInserts = 3

// insertWithCode generates a free code and runs insert with it, retrying with a
// new code when the insert reports domain.ErrCodeTaken.
func insertWithCode(ctx context.Context, gen *CodeGenerator, exists ExistsFunc, insert func(code string) error) error {
	var err error
	for attempt := 0; attempt < maxCodeInserts; attempt++ {
		var code string
		code, err = gen.Generate(ctx, exists)
		if err != nil {
			return err
		}

		err = insert(code)
		if !errors.Is(err, domain.ErrCodeTaken) {
			return err
		}
	}
	return fmt.Errorf("code taken on %d inserts: %w", maxCodeInserts, domain.ErrCodeSpaceExhausted)
}
