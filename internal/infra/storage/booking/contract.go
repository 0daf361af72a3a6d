package booking

import "github.com/m04kA/CourtBookingService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// ActiveSlotConstraint имя частичного уникального индекса активных броней
const ActiveSlotConstraint = "bookings_active_slot_key"
