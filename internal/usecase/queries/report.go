package queries

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"library-ledger/internal/domain/book"
	"library-ledger/internal/domain/transaction"
	"library-ledger/internal/pkg/clock"
	"library-ledger/internal/usecase/shared"
)

type ReportSummary struct {
	TotalUsers         int
	TotalBooks         int
	BorrowedBooks      int // borrow events in the log
	TotalLogs          int
	AvailableBooks     int
	ActiveReservations int
	OutstandingLoans   int
	OverdueLoans       int
}

type TopBook struct {
	Title   string
	QR      string
	Borrows int
}

type CategoryCount struct {
	Category string
	Books    int
}

type MonthlyStat struct {
	Month   time.Time // first instant of the month
	Borrows int
}

// ReportQueries never writes. Expired reservations are discounted in memory
// so the figures match what a sweep would leave behind.
type ReportQueries interface {
	GetReportSummary(ctx context.Context) (*ReportSummary, error)
	GetTopBooks(ctx context.Context, limit int) ([]TopBook, error)
	GetTopCategories(ctx context.Context, limit int) ([]CategoryCount, error)
	GetMonthlyStats(ctx context.Context, months int) ([]MonthlyStat, error)
}

type reportQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReportQueries(uow shared.UnitOfWork, clock clock.Clock) ReportQueries {
	return &reportQueriesImpl{uow: uow, clock: clock}
}

func (q *reportQueriesImpl) GetReportSummary(ctx context.Context) (*ReportSummary, error) {
	now := q.clock.Now()

	var summary *ReportSummary
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		state, err := shared.LoadLedger(ctx, tx)
		if err != nil {
			return err
		}
		users, err := tx.Users().List(ctx)
		if err != nil {
			return err
		}
		logs, err := tx.Logs().List(ctx)
		if err != nil {
			return err
		}

		state.Sweep(now)
		loans := transaction.ActiveLoans(state.Log, now)

		s := &ReportSummary{
			TotalUsers:         len(users),
			TotalBooks:         len(state.Books),
			BorrowedBooks:      countBorrows(state.Log),
			TotalLogs:          len(logs),
			AvailableBooks:     len(state.AvailableBooks()),
			ActiveReservations: len(state.Reservations),
			OutstandingLoans:   len(loans),
		}
		for _, l := range loans {
			if l.Overdue {
				s.OverdueLoans++
			}
		}
		summary = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (q *reportQueriesImpl) GetTopBooks(ctx context.Context, limit int) ([]TopBook, error) {
	log, err := q.listLog(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	top := []TopBook{}
	for _, t := range log {
		if t.Type() != transaction.TypeBorrow {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(t.BookQR()))
		if key == "" {
			key = "title:" + strings.TrimSpace(t.BookTitle())
		}
		i, ok := index[key]
		if !ok {
			i = len(top)
			index[key] = i
			top = append(top, TopBook{Title: t.BookTitle(), QR: t.BookQR()})
		}
		top[i].Borrows++
	}

	slices.SortStableFunc(top, func(a, b TopBook) int {
		if c := cmp.Compare(b.Borrows, a.Borrows); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
	return truncate(top, limit), nil
}

func (q *reportQueriesImpl) GetTopCategories(ctx context.Context, limit int) ([]CategoryCount, error) {
	var books []*book.Book
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		books, err = tx.Books().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, b := range books {
		counts[b.Category()]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryCount{Category: name, Books: n})
	}
	slices.SortFunc(out, func(a, b CategoryCount) int {
		if c := cmp.Compare(b.Books, a.Books); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	return truncate(out, limit), nil
}

func (q *reportQueriesImpl) GetMonthlyStats(ctx context.Context, months int) ([]MonthlyStat, error) {
	if months <= 0 {
		return []MonthlyStat{}, nil
	}
	log, err := q.listLog(ctx)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	loc := now.Location()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	stats := make([]MonthlyStat, months)
	for i := range stats {
		stats[i].Month = current.AddDate(0, i-months+1, 0)
	}
	first := stats[0].Month

	for _, t := range log {
		if t.Type() != transaction.TypeBorrow {
			continue
		}
		ts := t.Timestamp().In(loc)
		if ts.Before(first) || !ts.Before(current.AddDate(0, 1, 0)) {
			continue
		}
		idx := (ts.Year()-first.Year())*12 + int(ts.Month()) - int(first.Month())
		stats[idx].Borrows++
	}
	return stats, nil
}

func (q *reportQueriesImpl) listLog(ctx context.Context) ([]*transaction.Transaction, error) {
	var log []*transaction.Transaction
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		log, err = tx.Transactions().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

func countBorrows(log []*transaction.Transaction) int {
	n := 0
	for _, t := range log {
		if t.Type() == transaction.TypeBorrow {
			n++
		}
	}
	return n
}

// truncate keeps the first limit items; a non-positive limit keeps everything.
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
