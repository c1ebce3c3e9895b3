package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-KartingService/internal/domain"
)

// PathInt64 извлекает положительный int64 из переменной пути
func PathInt64(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// PathInt извлекает int из переменной пути
func PathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

// ParseDateTime разбирает "2024-06-12T15:00" или дату "2024-06-12" (начало дня) в UTC
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(domain.DateTimeFormat, value); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, value)
}
