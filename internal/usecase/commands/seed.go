package commands

import (
	"context"
	"log/slog"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/domain/user"
	"library-ledger/internal/usecase/shared"
)

var seedUsers = []user.Fields{
	{Name: "Gerald Venico", Membership: user.MembershipStudent, Address: "Angono", FaceID: "user1"},
	{Name: "Francis Polosco", Membership: user.MembershipEmployee, Address: "Binangonan", FaceID: "user2"},
}

var seedBooks = []book.Fields{
	{Title: "Venus", Author: "Sally MacEachern", Publisher: "Scholastic Library Publishing", Year: 2004, QR: "BOOK-VENUS"},
	{Title: "Taste and Smell", Author: "Sally MacEachern", Publisher: "Scholastic Library Publishing", Year: 2004, QR: "BOOK-TASTE"},
}

type SeedCommands interface {
	// SeedIfEmpty fills the users and books tables with demo data when they are empty.
	SeedIfEmpty(ctx context.Context) (seeded bool, err error)
}

type seedCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewSeedCommands(uow shared.UnitOfWork, logger *slog.Logger) SeedCommands {
	return &seedCommandsImpl{uow: uow, logger: logger}
}

func (c *seedCommandsImpl) SeedIfEmpty(ctx context.Context) (bool, error) {
	var seeded bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		seeded = false

		users, err := tx.Users().List(ctx)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			for i, f := range seedUsers {
				u, err := user.New(int64(i+1), f)
				if err != nil {
					return err
				}
				users = append(users, u)
			}
			if err := tx.Users().SaveAll(ctx, users); err != nil {
				return err
			}
			seeded = true
		}

		books, err := tx.Books().List(ctx)
		if err != nil {
			return err
		}
		if len(books) == 0 {
			for i, f := range seedBooks {
				b, err := book.New(int64(i+1), f)
				if err != nil {
					return err
				}
				books = append(books, b)
			}
			if err := tx.Books().SaveAll(ctx, books); err != nil {
				return err
			}
			seeded = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		c.logger.Info("demo data seeded")
	}
	return seeded, nil
}
