package invoice

import "github.com/m04kA/SMC-KartingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
