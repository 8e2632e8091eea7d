package response

import "library-ledger/internal/usecase/queries"

type ReportSummaryResponse struct {
	TotalUsers         int `json:"totalUsers"`
	TotalBooks         int `json:"totalBooks"`
	BorrowedBooks      int `json:"borrowedBooks"`
	TotalLogs          int `json:"totalLogs"`
	AvailableBooks     int `json:"availableBooks"`
	ActiveReservations int `json:"activeReservations"`
	OutstandingLoans   int `json:"outstandingLoans"`
	OverdueLoans       int `json:"overdueLoans"`
}

func FromReportSummary(s *queries.ReportSummary) *ReportSummaryResponse {
	return &ReportSummaryResponse{
		TotalUsers:         s.TotalUsers,
		TotalBooks:         s.TotalBooks,
		BorrowedBooks:      s.BorrowedBooks,
		TotalLogs:          s.TotalLogs,
		AvailableBooks:     s.AvailableBooks,
		ActiveReservations: s.ActiveReservations,
		OutstandingLoans:   s.OutstandingLoans,
		OverdueLoans:       s.OverdueLoans,
	}
}

type TopBookResponse struct {
	Title   string `json:"title"`
	QR      string `json:"qr,omitempty"`
	Borrows int    `json:"borrows"`
}

func FromTopBooks(items []queries.TopBook) []*TopBookResponse {
	res := make([]*TopBookResponse, len(items))
	for i, it := range items {
		res[i] = &TopBookResponse{Title: it.Title, QR: it.QR, Borrows: it.Borrows}
	}
	return res
}

type CategoryCountResponse struct {
	Category string `json:"category"`
	Books    int    `json:"books"`
}

func FromCategoryCounts(items []queries.CategoryCount) []*CategoryCountResponse {
	res := make([]*CategoryCountResponse, len(items))
	for i, it := range items {
		res[i] = &CategoryCountResponse{Category: it.Category, Books: it.Books}
	}
	return res
}

type MonthlyStatResponse struct {
	Month   string `json:"month"` // YYYY-MM
	Label   string `json:"label"` // Jan 2025
	Borrows int    `json:"borrows"`
}

func FromMonthlyStats(items []queries.MonthlyStat) []*MonthlyStatResponse {
	res := make([]*MonthlyStatResponse, len(items))
	for i, it := range items {
		res[i] = &MonthlyStatResponse{
			Month:   it.Month.Format("2006-01"),
			Label:   it.Month.Format("Jan 2006"),
			Borrows: it.Borrows,
		}
	}
	return res
}
