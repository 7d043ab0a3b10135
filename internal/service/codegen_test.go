package service

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/greenlink/internal/domain"
)

var codePattern = regexp.MustCompile(`^([A-Z]+)([0-9]{4})$`)

func neverTaken(context.Context, string) (bool, error) { return false, nil }

func TestCandidate_Format(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, words := range [][]string{ClubCodeWords, TeamCodeWords} {
		for i := 0; i < 500; i++ {
			code := Candidate(rng, words)

			m := codePattern.FindStringSubmatch(code)
			require.NotNil(t, m, "code %q has unexpected format", code)
			assert.Contains(t, words, m[1])
			assert.GreaterOrEqual(t, m[2], "1000")
			assert.LessOrEqual(t, m[2], "9999")
		}
	}
}

func TestCandidate_SameSeedSameCodes(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		assert.Equal(t, Candidate(a, ClubCodeWords), Candidate(b, ClubCodeWords))
	}
}

func TestGenerate_SkipsTakenCodes(t *testing.T) {
	gen := NewCodeGenerator(TeamCodeWords, rand.NewSource(1), 10)

	calls := 0
	code, err := gen.Generate(context.Background(), func(_ context.Context, code string) (bool, error) {
		calls++
		return calls < 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Regexp(t, codePattern, code)
}

func TestGenerate_Exhausted(t *testing.T) {
	gen := NewCodeGenerator(ClubCodeWords, rand.NewSource(1), 5)

	calls := 0
	_, err := gen.Generate(context.Background(), func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	})

	assert.ErrorIs(t, err, domain.ErrCodeSpaceExhausted)
	assert.Equal(t, 5, calls)
	assert.False(t, domain.IsClientError(err), "exhaustion is a server-side failure")
}

func TestGenerate_OracleError(t *testing.T) {
	gen := NewCodeGenerator(ClubCodeWords, rand.NewSource(1), 5)
	boom := errors.New("db is down")

	_, err := gen.Generate(context.Background(), func(context.Context, string) (bool, error) {
		return false, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestGenerate_ContextCancelled(t *testing.T) {
	gen := NewCodeGenerator(ClubCodeWords, rand.NewSource(1), 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, neverTaken)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_Concurrent(t *testing.T) {
	gen := NewCodeGenerator(ClubCodeWords, nil, 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := gen.Generate(context.Background(), neverTaken)
			assert.NoError(t, err)
			assert.Regexp(t, codePattern, code)
		}()
	}
	wg.Wait()
}

func TestInsertWithCode_RetriesOnTakenCode(t *testing.T) {
	gen := NewCodeGenerator(ClubCodeWords, rand.NewSource(3), 0)

	var inserted []string
	err := insertWithCode(context.Background(), gen, neverTaken, func(code string) error {
		inserted = append(inserted, code)
		if len(inserted) < 3 {
			return domain.ErrCodeTaken
		}
		return nil
	})

	require.NoError(t, err)
	assert.Len(t, inserted, 3)
}

func TestInsertWithCode_GivesUp(t *testing.T) {
	gen := NewCodeGenerator(ClubCodeWords, rand.NewSource(3), 0)

	inserts := 0
	err := insertWithCode(context.Background(), gen, neverTaken, func(string) error {
		inserts++
		return domain.ErrCodeTaken
	})

	assert.ErrorIs(t, err, domain.ErrCodeSpaceExhausted)
	assert.Equal(t, maxCodeInserts, inserts)
}

func TestInsertWithCode_OtherErrorsAreNotRetried(t *testing.T) {
	gen := NewCodeGenerator(ClubCodeWords, rand.NewSource(3), 0)

	inserts := 0
	err := insertWithCode(context.Background(), gen, neverTaken, func(string) error {
		inserts++
		return domain.ErrUserNotFound
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, 1, inserts)
}
