package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/container"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	cfg := config.Load()
	config.InitLogger(cfg)

	app, err := container.New(context.Background(), cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to initialize trivia-api")
	}

	adapter = httpadapter.New(app.Router())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
