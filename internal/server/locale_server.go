package server

import (
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"giftai/internal/domain/value"
	"giftai/pkg/errcodes"
	"giftai/pkg/httpx/reply"
)

type localeResolver interface {
	Resolve(location string) value.Locale
}

type LocaleServer struct {
	resolver localeResolver
}

func NewLocaleServer(resolver localeResolver) LocaleServer {
	return LocaleServer{
		resolver: resolver,
	}
}

func (s LocaleServer) getV1Locale(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		return failure.NewInvalidArgumentError(
			"empty location",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Missing required query parameter: location"),
		)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTLocale(s.resolver.Resolve(location)))

	return nil
}
