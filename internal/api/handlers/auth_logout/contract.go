package auth_logout

import "net/http"

type SessionManager interface {
	ClearCookie(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
