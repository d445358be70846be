// Package deeplink разбирает параметр запуска мини-приложения и строит ссылки
// для шеринга профиля.
package deeplink

import (
	"fmt"
	"strconv"
	"strings"
)

// ProfilePrefix — префикс start_param для ссылок на профиль.
const ProfilePrefix = "profile_"

// ProfileUserID извлекает ID пользователя из start_param.
// Поддерживаются форматы "profile_123456789" и "123456789".
// Второе значение false, если ID не найден.
func ProfileUserID(startParam string) (int64, bool) {
	if startParam == "" {
		return 0, false
	}
	startParam = strings.TrimPrefix(startParam, ProfilePrefix)

	id, err := strconv.ParseInt(leadingDigits(startParam), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// leadingDigits повторяет поведение parseInt: берутся цифры до первого нецифрового символа.
func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

// ProfileShareLink возвращает ссылку вида https://t.me/<bot>/app?startapp=profile_<id>.
func ProfileShareLink(botUsername string, userID int64) string {
	return fmt.Sprintf("https://t.me/%s/app?startapp=%s%d", botUsername, ProfilePrefix, userID)
}
