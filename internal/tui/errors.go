// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-study-shelf/internal/service"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/internal/validators"
)

var ErrUserQuit = errors.New("вышел из программы")

const msgServerUnavailable = "Отсутствует сеть или Сервер недоступен"

var humanMessages = []struct {
	target  error
	message string
}{
	{service.ErrEmailNotConfirmed, "Email не подтверждён. Нажмите ctrl+r, чтобы отправить письмо ещё раз"},
	{service.ErrWrongPassword, "Неверный email или пароль"},
	{store.ErrEmailAlreadyExists, "Пользователь с таким email уже существует"},
	{store.ErrUsernameTaken, "Имя пользователя уже занято"},
	{validators.ErrInvalidSemester, "Семестр должен быть от 1 до 8"},
	{service.ErrNoSubjectSelected, "Сначала выберите предмет"},
	{service.ErrUnknownSubject, "Предмет не найден в текущем списке"},
	{service.ErrAccessDenied, "Нет доступа к предмету"},
	{store.ErrSubjectNotFound, "Предмет не найден"},
	{service.ErrFileTooLarge, "Файл слишком большой"},
	{service.ErrUnsupportedFileType, "Можно загружать только PDF"},
	{service.ErrTokenIsExpiredOrInvalid, "Ссылка устарела или неверна"},
	{service.ErrAuthenticationRequired, "Требуется вход"},
	{service.ErrUnavailable, msgServerUnavailable},
}

// humanizeError turns service errors into text for the status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range humanMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
