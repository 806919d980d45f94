package app

import (
	"compress/gzip"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type contextKey string

const userIDKey = contextKey("userID")

// withLog пишет в лог итог каждого запроса
func (s *Server) withLog(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		h.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.Info(
			"входящий запрос",
			slog.String("uri", r.RequestURI),
			slog.String("http метод", r.Method),
			slog.Duration("длительность запроса", time.Since(start)),
			slog.Int("статус", status),
			slog.Int("размер ответа", ww.BytesWritten()),
		)
	})
}

// gzipBody тело запроса, сжатое gzip
type gzipBody struct {
	*gzip.Reader
	orig io.ReadCloser
}

func (b gzipBody) Close() error {
	_ = b.Reader.Close()
	return b.orig.Close()
}

// withGzipBody распаковывает тело запроса, сжатое gzip. сжатие ответов делает middleware.Compress
func withGzipBody(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			h.ServeHTTP(w, r)
			return
		}
		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "тело запроса не в формате gzip", http.StatusBadRequest)
			return
		}
		r.Body = gzipBody{Reader: zr, orig: r.Body}
		r.Header.Del("Content-Encoding")
		h.ServeHTTP(w, r)
	})
}

// withUser определяет пользователя по cookie. без cookie или с невалидной cookie пользователь считается новым
func (s *Server) withUser(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := userFromRequest(r, s.Config.SecretKey())
		if err != nil {
			s.logger.Debug("новый пользователь", slog.String("причина", err.Error()))

			userID = uuid.New()
			now := time.Now()
			token, err := issueToken(userID, s.Config.SecretKey(), now)
			if err != nil {
				s.logger.Error("создание токена", slog.String("ошибка", err.Error()))
				http.Error(w, "не удалось создать пользователя", http.StatusInternalServerError)
				return
			}
			setUserCookie(w, token, now)
		}
		h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// userIDFromContext ID пользователя, сохраненный withUser
func userIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
