package http

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/resumebase/visitcount/constants"
	"github.com/resumebase/visitcount/utils"
)

// HandleRequest is the Lambda entrypoint behind API Gateway. Whatever goes
// wrong, it returns a JSON 500 envelope rather than an error to the runtime.
func (h *Handler) HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	ctx = utils.WithRequestID(ctx, uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			utils.ErrorCtx(ctx, "Unexpected error", "panic", r)
			resp = gatewayResponse(ctx, internalErrorResponse())
			err = nil
		}
	}()

	utils.InfoCtx(ctx, "Received event", "method", req.HTTPMethod, "path", req.Path)
	return gatewayResponse(ctx, h.Dispatch(ctx, req.HTTPMethod)), nil
}

func gatewayResponse(ctx context.Context, res Response) events.APIGatewayProxyResponse {
	headers := CORSHeaders()
	headers[constants.HeaderContentType] = constants.ContentTypeJSON

	body, err := json.Marshal(res.Body)
	if err != nil {
		// The envelope maps marshal fine; this guards future body shapes.
		utils.ErrorCtx(ctx, "Failed to encode response body", "error", err)
		res.Status = 500
		body = []byte(`{"error":"` + constants.ResponseInternalError + `"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: res.Status,
		Headers:    headers,
		Body:       string(body),
	}
}
