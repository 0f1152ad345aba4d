package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/JerryTarus/secure-s3-upload/internal/app/upload"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/errs"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/logx"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/resp"
)

// APIGatewayHandlerFunc is the signature lambda.Start expects for proxy events.
type APIGatewayHandlerFunc func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// corsHeaders returns the headers attached to every response envelope.
// Browsers uploading straight from the page depend on these being present
// on failures as much as on successes.
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

// APIGatewayHandler adapts the upload-authorization core to the API Gateway
// proxy event shape for Lambda deployments.
//
// The returned handler never reports an error to the Lambda runtime: every
// failure, including a panic, is converted into a well-formed 500 envelope so
// the client always receives the standard response shape and CORS headers.
func APIGatewayHandler(deps *AppDeps) APIGatewayHandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (response events.APIGatewayProxyResponse, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				logx.Error(fmt.Errorf("%v", rec), "Recovered from panic while authorizing upload")
				response = envelopeError(errs.NewError(errs.ErrSignFailed))
				err = nil
			}
		}()

		input := upload.ParseRequest([]byte(event.Body))

		result, customErr := deps.Uploads.Authorize(ctx, input)
		if customErr != nil {
			return envelopeError(customErr), nil
		}

		return envelopeJSON(http.StatusOK, result), nil
	}
}

// envelopeJSON marshals payload into a proxy response envelope with the CORS headers set.
func envelopeJSON(status int, payload any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "Error encoding response envelope", "http_status", status)
		return envelopeError(errs.NewError(errs.ErrSignFailed))
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders(),
		Body:       string(body),
	}
}

// envelopeError shapes a CustomError into the {"error": ...} envelope.
func envelopeError(customErr *errs.CustomError) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(resp.ErrorBody{Error: customErr.Message})

	return events.APIGatewayProxyResponse{
		StatusCode: customErr.Status,
		Headers:    corsHeaders(),
		Body:       string(body),
	}
}
