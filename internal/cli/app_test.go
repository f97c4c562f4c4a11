package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/mocks"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/platform/memory"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/service/content"
	"github.com/phrazzld/flashdeck/internal/session"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// harness runs commands as separate invocations over one persisted store,
// the way repeated runs of the binary share a device file.
type harness struct {
	t    *testing.T
	kv   store.KVStore
	lang language.Tag
}

func newHarness(t *testing.T) *harness {
	return &harness{t: t, kv: memory.NewKVStore(), lang: language.English}
}

func (h *harness) run(input string, args ...string) (string, error) {
	h.t.Helper()
	_, l := logger.NewTestLogger(h.t)

	provider, err := content.NewProvider(nil, content.Options{Strategy: content.StrategyOffline}, l)
	require.NoError(h.t, err)

	var out bytes.Buffer
	app := NewApp(Deps{
		Auth:     auth.NewService(h.kv, &mocks.MockPasswordHasher{}, l),
		Provider: provider,
		Session:  session.NewStore(nil, l),
		In:       strings.NewReader(input),
		Out:      &out,
		StdinFd:  -1,
		Language: h.lang,
		Logger:   l,
	})
	err = app.Run(context.Background(), args)
	return out.String(), err
}

func (h *harness) registerAndLogin() {
	h.t.Helper()
	_, err := h.run("Alice\na@x.com\nsecret1\nsecret1\n", "register")
	require.NoError(h.t, err)
	_, err = h.run("a@x.com\nsecret1\n", "login")
	require.NoError(h.t, err)
}

func TestRun_Usage(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("")
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out, "Usage: flashcards")

	_, err = h.run("", "fly")
	assert.ErrorIs(t, err, ErrUsage)

	out, err = h.run("", "help")
	assert.NoError(t, err)
	assert.Contains(t, out, "study [-category c]")
}

func TestAccountCommands(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Not logged in.\n", out)

	out, err = h.run("Alice\na@x.com\nsecret1\nsecret1\n", "register")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered Alice <a@x.com>.")

	out, err = h.run("", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Not logged in.\n", out, "registering does not log in")

	out, err = h.run("a@x.com\nsecret1\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Alice <a@x.com>.")

	out, err = h.run("", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Alice <a@x.com>\n", out)

	out, err = h.run("", "logout")
	require.NoError(t, err)
	assert.Equal(t, "Logged out.\n", out)

	out, err = h.run("", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Not logged in.\n", out)
}

func TestAccountCommands_Errors(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("Alice\na@x.com\nsecret1\nsecret2\n", "register")
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	_, err = h.run("Alice\na@x.com\nsecret1\nsecret1\n", "register")
	require.NoError(t, err)
	_, err = h.run("Bob\na@x.com\nsecret1\nsecret1\n", "register")
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	_, err = h.run("a@x.com\nwrong\n", "login")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = h.run("a@x.com\n", "login")
	assert.ErrorIs(t, err, io.EOF)
}

func TestRegister_TerminalPassword(t *testing.T) {
	origRead, origIsTerminal := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origIsTerminal })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("secret1"), nil }

	h := newHarness(t)
	out, err := h.run("Alice\na@x.com\n", "register")
	require.NoError(t, err)
	assert.Contains(t, out, "Password: \n")
	assert.Contains(t, out, "Registered Alice <a@x.com>.")
}

func TestCategoriesCommand(t *testing.T) {
	h := newHarness(t)
	h.lang = language.BrazilianPortuguese

	out, err := h.run("", "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"math", "Matemática", "3"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"all", "Todos", "12"}, strings.Fields(lines[5]))
}

func TestCardsCommand(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name      string
		args      []string
		wantLines int
		contains  string
	}{
		{"all cards", nil, 12, "What is a metaphor?"},
		{"by category", []string{"-category", "science"}, 2, "What is photosynthesis?"},
		{"by difficulty", []string{"-difficulty", "hard"}, 3, "What is the quadratic formula"},
		{"category and difficulty", []string{"-category", "math", "-difficulty", "easy"}, 2, "What is 2 + 2?"},
		{"no matches", []string{"-category", "astronomy"}, 1, "No flashcards found."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := h.run("", append([]string{"cards"}, tc.args...)...)
			require.NoError(t, err)
			assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), tc.wantLines)
			assert.Contains(t, out, tc.contains)
		})
	}

	_, err := h.run("", "cards", "-difficulty", "extreme")
	assert.True(t, domain.IsValidationError(err))

	_, err = h.run("", "cards", "-bogus")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestStatsCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 12")
	assert.Contains(t, out, "Literature")
	assert.Contains(t, out, "medium")
}

func TestStudyCommand(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "study")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	h.registerAndLogin()

	_, err = h.run("", "study", "-category", "astronomy")
	assert.True(t, domain.IsValidationError(err))

	out, err := h.run("\n\n", "study", "-category", "science")
	require.NoError(t, err)
	assert.Contains(t, out, "Studying Science as Alice: 2 cards")
	assert.Contains(t, out, "[1/2]")
	assert.Contains(t, out, "Answer: Oxygen")
	assert.Contains(t, out, "Answer: The process by which plants convert sunlight into energy")
	assert.Contains(t, out, "Reviewed 2 of 2 cards.")
	assert.Contains(t, out, "Progress: 33% (4 of 12 flashcards completed across 5 categories)")
}

func TestStudyCommand_StopsEarly(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin()

	out, err := h.run("\nq\n", "study")
	require.NoError(t, err)
	assert.Contains(t, out, "Reviewed 1 of 12 cards.")
	assert.NotContains(t, out, "[3/12]")

	out, err = h.run("", "study", "-category", "math")
	require.NoError(t, err)
	assert.Contains(t, out, "Reviewed 0 of 3 cards.")
}

func TestStudyCommand_ClearProgress(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin()

	out, err := h.run("\nc\n", "study", "-category", "math")
	require.NoError(t, err)
	assert.Contains(t, out, "c to clear progress")
	assert.Contains(t, out, "Progress cleared.")
	assert.Contains(t, out, "Reviewed 1 of 3 cards.")
	assert.Contains(t, out, "Progress: 0% (0 of 0 flashcards completed across 0 categories)")
	assert.NotContains(t, out, "[3/3]")

	out, err = h.run("\n", "study", "-category", "math")
	require.NoError(t, err)
	assert.Contains(t, out, "Studying Mathematics as Alice: 3 cards", "the next run reloads the card set")
	assert.NotContains(t, out, "Progress cleared.")
}
