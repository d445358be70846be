// Package sl содержит вспомогательные функции для работы с логгером slog.
// Основная цель — единообразно формировать структурированные поля лога.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки.
// Для nil-ошибки значение пустое, чтобы логирование не паниковало.
//
// Пример:
//
//	log.Error("failed to swap cells", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Op возвращает атрибут с именем операции.
func Op(op string) slog.Attr {
	return slog.String("op", op)
}

// UserID возвращает атрибут с идентификатором пользователя Telegram.
func UserID(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}
