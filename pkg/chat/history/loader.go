package history

import (
	"context"

	"chat-relay-be/internal/repository/contract"
	"chat-relay-be/internal/repository/specification"
	"chat-relay-be/pkg/llm"
)

// Loader reads the recent conversation window for a user.
type Loader struct {
	turns contract.TurnRepository
}

func NewLoader(turns contract.TurnRepository) *Loader {
	return &Loader{turns: turns}
}

// Load returns up to limit of the most recently stored turns for userID,
// oldest first. The store is queried in descending id order (that is how
// "most recent K" is expressed there) and the window is reversed back into
// chronological order for the completion request.
func (l *Loader) Load(ctx context.Context, userID string, limit int) ([]llm.Message, error) {
	if limit <= 0 {
		return []llm.Message{}, nil
	}

	turns, err := l.turns.FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "id", Desc: true},
		specification.Limit{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.Message, 0, len(turns))
	for i := len(turns) - 1; i >= 0; i-- {
		messages = append(messages, llm.Message{
			Role:    turns[i].Role,
			Content: turns[i].Content,
		})
	}

	return messages, nil
}
