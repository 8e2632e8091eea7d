package queries

import (
	"context"

	"library-ledger/internal/domain/user"
	"library-ledger/internal/usecase/shared"
)

type MemberQueries interface {
	GetUsers(ctx context.Context) ([]*user.User, error)
}

type memberQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewMemberQueries(uow shared.UnitOfWork) MemberQueries {
	return &memberQueriesImpl{uow: uow}
}

func (q *memberQueriesImpl) GetUsers(ctx context.Context) ([]*user.User, error) {
	var users []*user.User
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		users, err = tx.Users().List(ctx)
		return err
	})
	return users, err
}
