package repository

import (
	"log/slog"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/infra/repository/converter"
)

type BookRepository struct {
	tableRepo[converter.BookRecord, *book.Book]
}

func NewBookRepository(tables *recordstore.Tables, logger *slog.Logger) *BookRepository {
	return &BookRepository{tableRepo[converter.BookRecord, *book.Book]{
		tables:   tables,
		logger:   logger,
		name:     recordstore.TableBooks,
		toEntity: converter.BookFromRecord,
		toRecord: converter.BookToRecord,
	}}
}
