package components

import (
	"library-ledger/internal/handler"
	"library-ledger/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookHandler,
		api.NewReservationHandler,
		api.NewTransactionHandler,
		api.NewMemberHandler,
		api.NewAttendanceHandler,
		api.NewReportHandler,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	books *api.BookHandler,
	reservations *api.ReservationHandler,
	transactions *api.TransactionHandler,
	members *api.MemberHandler,
	attendance *api.AttendanceHandler,
	reports *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Books:        books,
		Reservations: reservations,
		Transactions: transactions,
		Members:      members,
		Attendance:   attendance,
		Reports:      reports,
	}
}
