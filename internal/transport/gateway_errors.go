package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/status"
)

// GatewayErrorHandler writes grpc-gateway failures, routing misses included,
// in the same {"error": message} envelope as the REST routes.
func GatewayErrorHandler(
	_ context.Context,
	_ *gwruntime.ServeMux,
	_ gwruntime.Marshaler,
	w http.ResponseWriter,
	_ *http.Request,
	err error,
) {
	code := http.StatusBadRequest
	var routing *gwruntime.HTTPStatusError
	if errors.As(err, &routing) {
		code = routing.HTTPStatus
		err = routing.Err
	} else if st, ok := status.FromError(err); ok {
		code = gwruntime.HTTPStatusFromCode(st.Code())
	}

	message := status.Convert(err).Message()
	if message == "" {
		message = http.StatusText(code)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = render.JSON{Data: gin.H{"error": message}}.Render(w)
}
