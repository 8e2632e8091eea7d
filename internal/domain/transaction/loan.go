package transaction

import (
	"slices"
	"sort"
	"time"
)

// LoanPeriod is how long a borrower may keep a book before it is overdue.
const LoanPeriod = 14 * 24 * time.Hour

type Loan struct {
	Borrow     *Transaction
	BorrowedAt time.Time
	DueAt      time.Time
	Overdue    bool
}

// ActiveLoans derives outstanding loans from a most-recent-first log: for every
// (user, book) pair, the latest borrow with no later return. Events are ordered
// by timestamp with ties resolved by log position. The result is sorted by due
// date, earliest first.
func ActiveLoans(log []*Transaction, now time.Time) []Loan {
	chrono := slices.Clone(log)
	slices.Reverse(chrono)
	sort.SliceStable(chrono, func(i, j int) bool {
		return chrono[i].timestamp.Before(chrono[j].timestamp)
	})

	open := make(map[pairKey]*Transaction)
	var order []pairKey
	for _, t := range chrono {
		k := t.key()
		switch t.fields.Type {
		case TypeBorrow:
			if _, seen := open[k]; !seen {
				order = append(order, k)
			}
			open[k] = t
		case TypeReturn:
			if _, seen := open[k]; seen {
				open[k] = nil
			}
		}
	}

	loans := make([]Loan, 0, len(order))
	for _, k := range order {
		borrow := open[k]
		if borrow == nil {
			continue
		}
		due := borrow.timestamp.Add(LoanPeriod)
		loans = append(loans, Loan{
			Borrow:     borrow,
			BorrowedAt: borrow.timestamp,
			DueAt:      due,
			Overdue:    now.After(due),
		})
	}

	sort.SliceStable(loans, func(i, j int) bool {
		return loans[i].DueAt.Before(loans[j].DueAt)
	})
	return loans
}

// HasOutstanding reports whether any active loan references the book code.
func HasOutstanding(log []*Transaction, bookQR string, now time.Time) bool {
	for _, l := range ActiveLoans(log, now) {
		if l.Borrow.ReferencesQR(bookQR) {
			return true
		}
	}
	return false
}
