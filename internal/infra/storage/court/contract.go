package court

import "github.com/m04kA/CourtBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
