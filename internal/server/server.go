package server

import "giftai/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Server объединяет HTTP сервера, отвечающие за обработку конкретных сущностей.
type Server struct {
	GiftServer
	LocaleServer
	AccountServer
	HistoryServer

	authenticator authenticator
	limiter       limiter
}

func NewServer(
	giftServer GiftServer,
	localeServer LocaleServer,
	accountServer AccountServer,
	historyServer HistoryServer,
	authenticator authenticator,
) Server {
	return Server{
		GiftServer:    giftServer,
		LocaleServer:  localeServer,
		AccountServer: accountServer,
		HistoryServer: historyServer,
		authenticator: authenticator,
	}
}

// WithRateLimiter включает ограничение частоты запросов к модели. Без него
// лимит не применяется.
func (s Server) WithRateLimiter(l limiter) Server {
	s.limiter = l
	return s
}
