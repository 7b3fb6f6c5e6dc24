package models

import "errors"

// ErrNotFound оборачивается репозиториями, когда запись не найдена
var ErrNotFound = errors.New("not found")
