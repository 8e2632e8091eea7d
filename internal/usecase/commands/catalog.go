package commands

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/pkg/errs"
	"library-ledger/internal/usecase/shared"
)

var ErrImportHeader = errs.Wrap(errs.ErrValidationFailed, "csv header must name at least title and author")

type ImportResult struct {
	Imported []*book.Book
	Skipped  int
}

type CatalogCommands interface {
	AddBook(ctx context.Context, fields book.Fields) (*book.Book, error)
	ImportBooks(ctx context.Context, csvData io.Reader) (*ImportResult, error)
}

type catalogCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewCatalogCommands(uow shared.UnitOfWork, logger *slog.Logger) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, logger: logger}
}

func (c *catalogCommandsImpl) AddBook(ctx context.Context, fields book.Fields) (*book.Book, error) {
	// reject before opening a unit so a bad request never touches the store
	if _, err := book.New(0, fields); err != nil {
		return nil, err
	}

	var added *book.Book
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		books, err := tx.Books().List(ctx)
		if err != nil {
			return err
		}
		if err := book.EnsureUniqueQR(books, fields.QR); err != nil {
			return err
		}
		b, err := book.New(book.NextID(books), fields)
		if err != nil {
			return err
		}
		if err := tx.Books().SaveAll(ctx, append(books, b)); err != nil {
			return err
		}
		added = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("book added", slog.Int64("book_id", added.ID()), slog.String("title", added.Title()))
	return added, nil
}

// ImportBooks adds every CSV row that has a title and an author and a QR code
// not yet in the catalog, in one unit.
// Header names are matched case-insensitively; unknown columns are ignored.
func (c *catalogCommandsImpl) ImportBooks(ctx context.Context, csvData io.Reader) (*ImportResult, error) {
	rows, err := parseBookCSV(csvData)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result.Imported, result.Skipped = nil, 0

		books, err := tx.Books().List(ctx)
		if err != nil {
			return err
		}
		for _, fields := range rows {
			if book.EnsureUniqueQR(books, fields.QR) != nil {
				result.Skipped++
				continue
			}
			b, err := book.New(book.NextID(books), fields)
			if err != nil {
				result.Skipped++
				continue
			}
			books = append(books, b)
			result.Imported = append(result.Imported, b)
		}
		if len(result.Imported) == 0 {
			return nil
		}
		return tx.Books().SaveAll(ctx, books)
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("books imported",
		slog.Int("imported", len(result.Imported)),
		slog.Int("skipped", result.Skipped))
	return result, nil
}

func parseBookCSV(r io.Reader) ([]book.Fields, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrValidationFailed, "read csv header: "+err.Error())
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["title"]; !ok {
		return nil, ErrImportHeader
	}
	if _, ok := col["author"]; !ok {
		return nil, ErrImportHeader
	}

	var out []book.Fields
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrValidationFailed, "read csv row: "+err.Error())
		}
		if isBlankRow(record) {
			continue
		}

		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		out = append(out, book.Fields{
			Title:       get("title"),
			Author:      get("author"),
			Publisher:   get("publisher"),
			Year:        atoiOrZero(get("year")),
			Category:    get("category"),
			Description: get("description"),
			Copies:      atoiOrZero(get("copies")),
			QR:          get("qr"),
		})
	}
	return out, nil
}

func isBlankRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
