package slot

import "github.com/m04kA/SMC-SlotBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
