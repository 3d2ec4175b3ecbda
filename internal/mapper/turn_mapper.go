package mapper

import (
	"chat-relay-be/internal/entity"
	"chat-relay-be/internal/model"
)

type TurnMapper struct{}

func NewTurnMapper() *TurnMapper {
	return &TurnMapper{}
}

func (m *TurnMapper) TurnToEntity(t *model.Turn) *entity.Turn {
	if t == nil {
		return nil
	}

	return &entity.Turn{
		Id:        t.Id,
		UserId:    t.UserId,
		Role:      t.Role,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TurnMapper) TurnToModel(t *entity.Turn) *model.Turn {
	if t == nil {
		return nil
	}

	return &model.Turn{
		Id:        t.Id,
		UserId:    t.UserId,
		Role:      t.Role,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}
