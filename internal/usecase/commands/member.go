package commands

import (
	"context"
	"log/slog"

	"library-ledger/internal/domain/user"
	"library-ledger/internal/usecase/shared"
)

type MemberCommands interface {
	RegisterUser(ctx context.Context, fields user.Fields) (*user.User, error)
}

type memberCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewMemberCommands(uow shared.UnitOfWork, logger *slog.Logger) MemberCommands {
	return &memberCommandsImpl{uow: uow, logger: logger}
}

func (c *memberCommandsImpl) RegisterUser(ctx context.Context, fields user.Fields) (*user.User, error) {
	if _, err := user.New(0, fields); err != nil {
		return nil, err
	}

	var registered *user.User
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		users, err := tx.Users().List(ctx)
		if err != nil {
			return err
		}
		u, err := user.New(user.NextID(users), fields)
		if err != nil {
			return err
		}
		if err := tx.Users().SaveAll(ctx, append(users, u)); err != nil {
			return err
		}
		registered = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("user registered", slog.Int64("user_id", registered.ID()))
	return registered, nil
}
