package timeslot

import (
	"github.com/m04kA/SMC-SlotPaymentService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
