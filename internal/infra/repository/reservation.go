package repository

import (
	"log/slog"

	"library-ledger/internal/domain/reservation"
	"library-ledger/internal/infra/recordstore"
	"library-ledger/internal/infra/repository/converter"
)

type ReservationRepository struct {
	tableRepo[converter.ReservationRecord, *reservation.Reservation]
}

func NewReservationRepository(tables *recordstore.Tables, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{tableRepo[converter.ReservationRecord, *reservation.Reservation]{
		tables:   tables,
		logger:   logger,
		name:     recordstore.TableReservations,
		toEntity: converter.ReservationFromRecord,
		toRecord: converter.ReservationToRecord,
	}}
}
