package ports

import "context"

// ProfanityChecker screens display names through an external text service.
// A transport failure or timeout of the service propagates as an error and is
// never masked as "not profane".
type ProfanityChecker interface {
	// ContainsProfanity reports whether the given text contains profanity.
	ContainsProfanity(ctx context.Context, text string) (bool, error)
}
