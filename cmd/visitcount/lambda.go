package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/resumebase/visitcount/config"
	"github.com/resumebase/visitcount/counter"
	vchttp "github.com/resumebase/visitcount/http"
	"github.com/resumebase/visitcount/store"
	"github.com/resumebase/visitcount/utils"
)

// runLambda builds the store client once at cold start and serves API
// Gateway events until the runtime shuts the process down.
func runLambda() {
	cfg := config.FromEnv()

	st, err := store.NewFromConfig(context.Background(), cfg.Store)
	if err != nil {
		// Without a store every invocation is a 500; better to fail fast and
		// let the platform restart us.
		utils.Error("failed to initialize store: %v", err)
		os.Exit(1)
	}

	svc := counter.NewService(st, cfg.Store.Table)
	handler := vchttp.NewHandler(svc)
	lambda.Start(handler.HandleRequest)
}
