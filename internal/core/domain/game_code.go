package domain

import "github.com/insider-games/insider-api/internal/pkg/random"

const gameCodeLength = 5

// gameCodeAlphabet omits characters that read ambiguously when shared out
// loud or scribbled on paper (I, L, O, 0, 1).
const gameCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// NewGameCode draws a fresh game code. The generator knows nothing about
// codes already in use; the registry re-draws until the code is unique.
func NewGameCode(r random.Source) string {
	code := make([]byte, gameCodeLength)
	for i := range code {
		code[i] = gameCodeAlphabet[r.IntN(len(gameCodeAlphabet))]
	}
	return string(code)
}
